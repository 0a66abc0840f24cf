package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/phyten/dupdecl/internal/model"
	"github.com/phyten/dupdecl/internal/termcolor"
	"github.com/phyten/dupdecl/internal/textutil"
)

// maxLinesWidth bounds the LINES column so a name declared many times does
// not blow up the table.
const maxLinesWidth = 60

var tableHeaders = []string{"NAME", "COUNT", "LINES"}

// WriteTable renders one row per target name with aligned columns.
// Widths are measured on the visible text so wide runes stay aligned.
func WriteTable(w io.Writer, report *model.Report, colors Colors) error {
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{e.Name, strconv.Itoa(e.Count()), linesCell(e, "-")})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	if err := writeTableRow(w, tableHeaders, widths, func(int) termcolor.Style { return termcolor.HeaderStyle() }, colors.Enabled); err != nil {
		return err
	}
	for i, row := range rows {
		entry := report.Entries[i]
		styleFor := func(col int) termcolor.Style {
			if col != 1 {
				return termcolor.Style{}
			}
			switch entry.Count() {
			case 0:
				return termcolor.MissingStyle()
			case 1:
				return termcolor.UniqueStyle()
			default:
				return termcolor.CountStyle(entry.Count(), colors.Profile)
			}
		}
		if err := writeTableRow(w, row, widths, styleFor, colors.Enabled); err != nil {
			return err
		}
	}
	return nil
}

func writeTableRow(w io.Writer, cells []string, widths []int, styleFor func(int) termcolor.Style, enabled bool) error {
	var b strings.Builder
	last := len(cells) - 1
	for i, cell := range cells {
		if i < last {
			padded := textutil.PadRight(cell, widths[i])
			b.WriteString(termcolor.Apply(styleFor(i), cell, enabled))
			b.WriteString(padded[len(cell):])
			b.WriteString("  ")
			continue
		}
		b.WriteString(termcolor.Apply(styleFor(i), cell, enabled))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// linesCell joins the line numbers of e, or returns empty when there are none.
func linesCell(e model.Entry, empty string) string {
	lines := e.Lines()
	if len(lines) == 0 {
		return empty
	}
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return textutil.TruncateByWidth(strings.Join(parts, ", "), maxLinesWidth, "…")
}
