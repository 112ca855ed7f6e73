package termtable

import (
	"fmt"
	"strconv"
)

// Cell is one value in a table row. Its text is fixed at construction; an
// optional alignment overrides the owning column's alignment.
type Cell struct {
	text    string
	align   Alignment
	aligned bool
}

// NewCell converts v to display text with [Stringify] and returns a cell that
// uses its column's alignment. A Cell passed as v is returned unchanged.
func NewCell(v any) Cell {
	if c, ok := v.(Cell); ok {
		return c
	}
	return Cell{text: Stringify(v)}
}

// AlignedCell returns a cell with an alignment override.
func AlignedCell(v any, a Alignment) Cell {
	c := NewCell(v)
	c.align = a
	c.aligned = true
	return c
}

// Text returns the display text.
func (c Cell) Text() string { return c.text }

// Alignment returns the cell's override and whether one is set.
func (c Cell) Alignment() (Alignment, bool) { return c.align, c.aligned }

// String returns the display text.
func (c Cell) String() string { return c.text }

// effectiveAlign resolves the cell override against the column default.
func (c Cell) effectiveAlign(col Alignment) Alignment {
	if c.aligned {
		return c.align
	}
	return col
}

// Stringify converts a row value to display text. Nil becomes the empty
// string, floats use the shortest representation that round-trips, and
// anything else falls back to fmt.Sprint.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Cell:
		return x.text
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
