package termtable

import "fmt"

// Column defines a named vertical slot of a table.
type Column struct {
	// Name is the header text.
	Name string
	// Align is the default alignment for the header and every cell that
	// has no override.
	Align Alignment
	// MinWidth is the minimum content width in characters. The rendered
	// width grows to fit the header and the longest cell.
	MinWidth int
	// Color is the foreground color for the column's cells. It only
	// applies to colored output.
	Color Color
}

// NewColumn returns a column with the given name and alignment.
func NewColumn(name string, align Alignment) Column {
	return Column{Name: name, Align: align}
}

func (c Column) validate() error {
	if c.MinWidth < 0 {
		return fmt.Errorf("%w: column %q has %d", ErrNegativeWidth, c.Name, c.MinWidth)
	}
	return nil
}
