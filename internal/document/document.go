// Package document decodes YAML descriptions of tables.
//
// A stream may hold several YAML documents; each becomes one table:
//
//	title: Inventory
//	style: unicode
//	rule: boxed
//	headerColor: cyan
//	columns:
//	  - name: ID
//	    align: right
//	  - name: Product
//	    minWidth: 12
//	    color: green
//	rows:
//	  - [1, Keyboard]
//	  - [2, {text: Mouse, align: center}]
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/termtable"
)

// ErrInvalid reports a document that decodes but cannot describe a table.
var ErrInvalid = errors.New("invalid table document")

// Document is one decoded table description.
type Document struct {
	Title       string       `yaml:"title,omitempty"`
	Style       string       `yaml:"style,omitempty"`
	Rule        string       `yaml:"rule,omitempty"`
	HeaderColor string       `yaml:"headerColor,omitempty"`
	Columns     []ColumnSpec `yaml:"columns"`
	Rows        []Row        `yaml:"rows,omitempty"`
}

// ColumnSpec describes one column.
type ColumnSpec struct {
	Name     string `yaml:"name"`
	Align    string `yaml:"align,omitempty"`
	MinWidth int    `yaml:"minWidth,omitempty"`
	Color    string `yaml:"color,omitempty"`
}

// CellSpec is a cell written either as a plain scalar or as a mapping with
// text and an alignment override.
type CellSpec struct {
	Text  string `yaml:"text"`
	Align string `yaml:"align,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CellSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = CellSpec{Text: node.Value}
		return nil
	case yaml.MappingNode:
		type plain CellSpec
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*c = CellSpec(p)
		return nil
	default:
		return fmt.Errorf("%w: line %d: cell must be a scalar or a mapping", ErrInvalid, node.Line)
	}
}

// Row is one table row. Cells keep their position: a null cell is empty
// text in its own column.
type Row []CellSpec

// UnmarshalYAML implements yaml.Unmarshaler. yaml.v3 drops null elements
// when decoding a sequence of structs, so the sequence is walked here.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: row must be a sequence", ErrInvalid, node.Line)
	}
	row := make(Row, len(node.Content))
	for i, n := range node.Content {
		if isNull(n) {
			continue
		}
		if err := n.Decode(&row[i]); err != nil {
			return err
		}
	}
	*r = row
	return nil
}

func isNull(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// Decode reads every YAML document from r. Empty documents are skipped.
func Decode(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	var docs []Document
	for {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", len(docs)+1, err)
		}
		if len(d.Columns) == 0 && len(d.Rows) == 0 && d.Title == "" {
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Load decodes the documents in the file at path.
func Load(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Build converts the document into a table.
func (d Document) Build() (*termtable.Table, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, termtable.ErrNoColumns)
	}
	cols := make([]termtable.Column, len(d.Columns))
	for i, cs := range d.Columns {
		col, err := cs.column()
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, cs.Name, err)
		}
		cols[i] = col
	}
	t, err := termtable.NewWithColumns(cols...)
	if err != nil {
		return nil, err
	}

	style, err := termtable.ParseStyle(d.Style)
	if err != nil {
		return nil, err
	}
	t.SetStyle(style)

	rule, err := termtable.ParseRuleMode(d.Rule)
	if err != nil {
		return nil, err
	}
	t.SetRule(rule)

	hc, err := termtable.ParseColor(d.HeaderColor)
	if err != nil {
		return nil, fmt.Errorf("header color: %w", err)
	}
	t.SetHeaderColor(hc)

	for r, row := range d.Rows {
		values := make([]any, len(row))
		for i, cs := range row {
			cell, err := cs.cell()
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", r, i, err)
			}
			values[i] = cell
		}
		t.AddRow(values...)
	}
	return t, nil
}

func (cs ColumnSpec) column() (termtable.Column, error) {
	align, err := termtable.ParseAlignment(cs.Align)
	if err != nil {
		return termtable.Column{}, err
	}
	color, err := termtable.ParseColor(cs.Color)
	if err != nil {
		return termtable.Column{}, err
	}
	return termtable.Column{Name: cs.Name, Align: align, MinWidth: cs.MinWidth, Color: color}, nil
}

func (cs CellSpec) cell() (termtable.Cell, error) {
	if cs.Align == "" {
		return termtable.NewCell(cs.Text), nil
	}
	align, err := termtable.ParseAlignment(cs.Align)
	if err != nil {
		return termtable.Cell{}, err
	}
	return termtable.AlignedCell(cs.Text, align), nil
}
