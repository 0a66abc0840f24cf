package output

import (
	"fmt"
	"io"

	"github.com/phyten/dupdecl/internal/model"
	"github.com/phyten/dupdecl/internal/termcolor"
)

// RenderText returns the plain report lines, one block per target name in
// input order.
func RenderText(report *model.Report) []string {
	return renderText(report, Colors{})
}

func renderText(report *model.Report, colors Colors) []string {
	if report == nil {
		return nil
	}
	var lines []string
	for _, e := range report.Entries {
		switch e.Count() {
		case 0:
			msg := fmt.Sprintf("No occurrences of %s found", e.Name)
			lines = append(lines, termcolor.Apply(termcolor.MissingStyle(), msg, colors.Enabled))
		case 1:
			msg := fmt.Sprintf("Found 1 occurrence of %s (no duplicates)", e.Name)
			lines = append(lines, termcolor.Apply(termcolor.UniqueStyle(), msg, colors.Enabled))
		default:
			msg := fmt.Sprintf("Found %d occurrences of %s:", e.Count(), e.Name)
			lines = append(lines, termcolor.Apply(termcolor.CountStyle(e.Count(), colors.Profile), msg, colors.Enabled))
			for i, m := range e.Matches {
				lines = append(lines, fmt.Sprintf("  %d. Line %d", i+1, m.Line))
			}
		}
	}
	return lines
}

// WriteText writes RenderText output, one line per row.
func WriteText(w io.Writer, report *model.Report, colors Colors) error {
	for _, line := range renderText(report, colors) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
