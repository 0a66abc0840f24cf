package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/dupdecl/internal/model"
)

// WriteNDJSON streams one JSON object per target name.
func WriteNDJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range report.Entries {
		if err := enc.Encode(newEntryView(e, report.File)); err != nil {
			return err
		}
	}
	return nil
}
