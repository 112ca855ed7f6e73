package termtable

import (
	"fmt"
	"io"
	"strings"
)

// tsvEscaper keeps each cell on one line and in one field.
var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

func writeTSV(w io.Writer, t *Table) error {
	if err := writeTSVRow(w, t.header()); err != nil {
		return err
	}
	for _, row := range t.textRows() {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = tsvEscaper.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(escaped, "\t"))
	return err
}
