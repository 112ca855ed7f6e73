package termtable

import (
	"fmt"
	"io"
	"strings"
)

// markdownEscaper protects the cell delimiter.
var markdownEscaper = strings.NewReplacer("|", `\|`)

func writeMarkdown(w io.Writer, t *Table) error {
	header := make([]string, len(t.columns))
	for i, h := range t.header() {
		header[i] = markdownEscaper.Replace(h)
	}
	rows := t.textRows()
	for _, row := range rows {
		for i := range row {
			row[i] = markdownEscaper.Replace(row[i])
		}
	}

	// Column widths have a floor of 3 for alignment markers.
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = max(textWidth(header[i]), col.MinWidth, 3)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := textWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	aligns := make([]Alignment, len(t.columns))
	for i, col := range t.columns {
		aligns[i] = col.Align
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for r, row := range rows {
		cellAligns := make([]Alignment, len(aligns))
		for i := range aligns {
			cellAligns[i] = t.cellAt(r, i).effectiveAlign(aligns[i])
		}
		if err := writeMarkdownRow(w, row, widths, cellAligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = align(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
