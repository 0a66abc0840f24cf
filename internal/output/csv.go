package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/phyten/dupdecl/internal/model"
)

var csvHeaders = []string{"name", "count", "index", "line", "column"}

// WriteCSV renders one row per match as RFC 4180 CSV (CRLF endings).
// Names without any match still get a row with empty position columns.
func WriteCSV(w io.Writer, report *model.Report) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(csvHeaders); err != nil {
		return err
	}
	for _, e := range report.Entries {
		count := strconv.Itoa(e.Count())
		if e.Count() == 0 {
			if err := writer.Write([]string{e.Name, count, "", "", ""}); err != nil {
				return err
			}
			continue
		}
		for i, m := range e.Matches {
			row := []string{e.Name, count, strconv.Itoa(i + 1), strconv.Itoa(m.Line), strconv.Itoa(m.Column)}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
