package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/dupdecl/internal/model"
)

// WriteMarkdownTable renders the summary as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, report *model.Report) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(tableHeaders, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(tableHeaders))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, e := range report.Entries {
		row := []string{escapeMarkdownCell(e.Name), strconv.Itoa(e.Count()), linesCell(e, "")}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
