package termtable

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Table accumulates columns and rows and renders them. A Table is not safe
// for concurrent use.
type Table struct {
	columns     []Column
	rows        [][]Cell
	style       Style
	rule        RuleMode
	headerColor Color
	log         logr.Logger
}

// New returns a table with one left-aligned column per header.
func New(headers ...string) (*Table, error) {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Name: h}
	}
	return NewWithColumns(cols...)
}

// NewWithColumns returns a table with the given column definitions. The
// columns are copied.
func NewWithColumns(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	for _, c := range cols {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}
	owned := make([]Column, len(cols))
	copy(owned, cols)
	return &Table{columns: owned, log: logr.Discard()}, nil
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Style returns the border style.
func (t *Table) Style() Style { return t.style }

// AddRow appends a row. Each value is converted with [NewCell]; pass a
// [Cell] to override alignment. Missing trailing values become empty cells
// and values beyond the column count are ignored.
func (t *Table) AddRow(values ...any) {
	row := make([]Cell, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = NewCell(values[i])
		}
	}
	t.rows = append(t.rows, row)
}

// AddRows appends each row in order.
func (t *Table) AddRows(rows ...[]any) {
	for _, r := range rows {
		t.AddRow(r...)
	}
}

// SetAlignment sets the default alignment of column i.
func (t *Table) SetAlignment(i int, a Alignment) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	t.columns[i].Align = a
	return nil
}

// SetColumnColor sets the foreground color of column i's cells.
func (t *Table) SetColumnColor(i int, c Color) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	t.columns[i].Color = c
	return nil
}

// SetMinWidth sets the minimum width of column i.
func (t *Table) SetMinWidth(i, width int) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	if width < 0 {
		return fmt.Errorf("%w: column %d has %d", ErrNegativeWidth, i, width)
	}
	t.columns[i].MinWidth = width
	return nil
}

// SetStyle sets the border style.
func (t *Table) SetStyle(s Style) { t.style = s }

// SetRule sets how separator lines are drawn. The default is [RuleFlat].
func (t *Table) SetRule(m RuleMode) { t.rule = m }

// SetHeaderColor sets the foreground color of the header text. It only
// applies to colored output.
func (t *Table) SetHeaderColor(c Color) { t.headerColor = c }

// SetLogger sets the logger used to report color failures, which are
// otherwise ignored. The default discards everything.
func (t *Table) SetLogger(log logr.Logger) { t.log = log }

func (t *Table) checkIndex(i int) error {
	if i < 0 || i >= len(t.columns) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrColumnIndex, i, len(t.columns)-1)
	}
	return nil
}

func (t *Table) renderer() *renderer {
	return newRenderer(t.columns, t.rows, Resolve(t.style), t.rule, t.log)
}

// String renders the table as plain text without a trailing newline.
func (t *Table) String() string {
	return t.renderer().String()
}

// RenderTo writes the table to w without a trailing newline. When color is
// true and w implements [ColorSink], header and column colors are applied
// and the sink's color is restored after each colored segment. Otherwise
// the output equals [Table.String].
func (t *Table) RenderTo(w io.Writer, color bool) error {
	return t.renderer().writeTo(w, t.headerColor, color)
}

// Print writes the table followed by a newline. Color is used when w is a
// [ColorSink], or when w is a terminal and NO_COLOR is unset, in which case
// the terminal's color profile is detected with termenv.
func (t *Table) Print(w io.Writer) error {
	color := false
	switch x := w.(type) {
	case ColorSink:
		color = true
	case *os.File:
		if colorTerminal(x) {
			w = NewANSISink(x, termenv.NewOutput(x).EnvColorProfile())
			color = true
		}
	}
	if err := t.RenderTo(w, color); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func colorTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
