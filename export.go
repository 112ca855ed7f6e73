package termtable

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format is a machine- or document-oriented output format for a table.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a Go text/template once per
// row. The template sees a map from column name to cell text.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	if s == "md" {
		return Markdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export writes the table to w in format f. Text is the plain rendering
// followed by a newline; the other formats ignore borders and colors.
//
// JSON, JSONL, YAML and GoTemplate key each row by column name. A repeated
// name is keyed with a numeric suffix ("Name", "Name_2", ...) that skips
// names already used by other columns, so no value is lost.
func (t *Table) Export(w io.Writer, f Format) error {
	switch f {
	case Text:
		_, err := io.WriteString(w, t.String()+"\n")
		return err
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal exports the table and returns the bytes.
func (t *Table) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Export(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Table) header() []string {
	h := make([]string, len(t.columns))
	for i, c := range t.columns {
		h[i] = c.Name
	}
	return h
}

// recordKeys returns the column names made unique for keyed formats.
func (t *Table) recordKeys() []string {
	names := t.header()
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		taken[n] = true
	}
	used := make(map[string]bool, len(names))
	keys := make([]string, len(names))
	for i, n := range names {
		k := n
		if used[k] {
			for j := 2; ; j++ {
				k = n + "_" + strconv.Itoa(j)
				if !taken[k] && !used[k] {
					break
				}
			}
		}
		used[k] = true
		keys[i] = k
	}
	return keys
}

func (t *Table) textRows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = make([]string, len(t.columns))
		for j := range t.columns {
			if j < len(row) {
				out[i][j] = row[j].text
			}
		}
	}
	return out
}

// cellAt returns the cell at (row, col), or an empty cell for a short row.
func (t *Table) cellAt(row, col int) Cell {
	if col < len(t.rows[row]) {
		return t.rows[row][col]
	}
	return Cell{}
}
