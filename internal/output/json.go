package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/dupdecl/internal/model"
)

// entryView is the serialized form of one target name. Lines and Matches
// are always arrays, never null.
type entryView struct {
	File      string        `json:"file,omitempty"`
	Name      string        `json:"name"`
	Count     int           `json:"count"`
	Duplicate bool          `json:"duplicate"`
	Lines     []int         `json:"lines"`
	Matches   []model.Match `json:"matches"`
}

type reportView struct {
	File           string      `json:"file"`
	Encoding       string      `json:"encoding"`
	Keyword        string      `json:"keyword"`
	TotalNames     int         `json:"total_names"`
	DuplicateNames int         `json:"duplicate_names"`
	Entries        []entryView `json:"entries"`
}

func newEntryView(e model.Entry, file string) entryView {
	lines := e.Lines()
	if lines == nil {
		lines = []int{}
	}
	matches := e.Matches
	if matches == nil {
		matches = []model.Match{}
	}
	return entryView{
		File:      file,
		Name:      e.Name,
		Count:     e.Count(),
		Duplicate: e.HasDuplicates(),
		Lines:     lines,
		Matches:   matches,
	}
}

// WriteJSON writes the whole report as one indented document.
func WriteJSON(w io.Writer, report *model.Report) error {
	view := reportView{
		File:           report.File,
		Encoding:       report.Encoding,
		Keyword:        report.Keyword,
		TotalNames:     len(report.Entries),
		DuplicateNames: len(report.Duplicates()),
		Entries:        make([]entryView, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		view.Entries = append(view.Entries, newEntryView(e, ""))
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
