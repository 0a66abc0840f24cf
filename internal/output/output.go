package output

import (
	"fmt"
	"io"

	"github.com/phyten/dupdecl/internal/model"
	"github.com/phyten/dupdecl/internal/termcolor"
)

// Colors carries the color decision for human-oriented formats.
// Machine formats (json, ndjson, csv, markdown) ignore it.
type Colors struct {
	Enabled bool
	Profile termcolor.Profile
}

// Write renders report in the given format. format must already be
// normalized (see opts.NormalizeOutput).
func Write(w io.Writer, format string, report *model.Report, colors Colors) error {
	if report == nil {
		return fmt.Errorf("nil report")
	}
	switch format {
	case "", "text":
		return WriteText(w, report, colors)
	case "table":
		return WriteTable(w, report, colors)
	case "json":
		return WriteJSON(w, report)
	case "ndjson":
		return WriteNDJSON(w, report)
	case "csv":
		return WriteCSV(w, report)
	case "markdown":
		return WriteMarkdownTable(w, report)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
