package termtable

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-logr/logr"
)

// renderer lays out one snapshot of a table. Widths are computed once at
// construction; nothing it is given is modified.
type renderer struct {
	columns []Column
	rows    [][]Cell
	border  BorderSet
	rule    RuleMode
	widths  []int
	log     logr.Logger
}

// segment is a run of text on one line. A non-zero color applies to that run
// only; padding and borders always use the ambient color.
type segment struct {
	text  string
	color Color
}

func newRenderer(columns []Column, rows [][]Cell, border BorderSet, rule RuleMode, log logr.Logger) *renderer {
	r := &renderer{
		columns: columns,
		rows:    rows,
		border:  border,
		rule:    rule,
		log:     log,
	}
	r.widths = computeWidths(columns, rows)
	return r
}

// textWidth counts characters, not display cells.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func computeWidths(columns []Column, rows [][]Cell) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = textWidth(col.Name)
		if col.MinWidth > widths[i] {
			widths[i] = col.MinWidth
		}
	}
	for _, row := range rows {
		for i := range columns {
			if i >= len(row) {
				break
			}
			if w := textWidth(row[i].text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// lineWidth returns the total width of every rendered line: each column
// contributes its width plus one space of padding on each side, and there is
// one vertical border before each column plus a trailing one.
func lineWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	return n + len(widths) + 1
}

type ruleKind int

const (
	ruleTop ruleKind = iota
	ruleMiddle
	ruleBottom
)

func (r *renderer) separator(kind ruleKind) string {
	bc := r.border
	if r.rule != RuleBoxed {
		return strings.Repeat(string(bc.Horizontal), lineWidth(r.widths))
	}
	var left, mid, right rune
	switch kind {
	case ruleTop:
		left, mid, right = bc.TopLeft, bc.TopJunction, bc.TopRight
	case ruleBottom:
		left, mid, right = bc.BottomLeft, bc.BottomJunction, bc.BottomRight
	default:
		left, mid, right = bc.LeftJunction, bc.Cross, bc.RightJunction
	}
	var sb strings.Builder
	sb.WriteRune(left)
	fill := string(bc.Horizontal)
	for i, width := range r.widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(r.widths)-1 {
			sb.WriteRune(mid)
		}
	}
	sb.WriteRune(right)
	return sb.String()
}

func (r *renderer) headerSegments(headerColor Color) []segment {
	cells := make([]segment, len(r.columns))
	for i, col := range r.columns {
		cells[i] = segment{
			text:  align(col.Name, r.widths[i], col.Align),
			color: headerColor,
		}
	}
	return r.frame(cells)
}

func (r *renderer) rowSegments(row []Cell) []segment {
	cells := make([]segment, len(r.columns))
	for i, col := range r.columns {
		var cell Cell
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = segment{
			text:  align(cell.text, r.widths[i], cell.effectiveAlign(col.Align)),
			color: col.Color,
		}
	}
	return r.frame(cells)
}

// frame interleaves aligned cell text with padding and vertical borders.
func (r *renderer) frame(cells []segment) []segment {
	vert := string(r.border.Vertical)
	line := make([]segment, 0, len(cells)*2+1)
	line = append(line, segment{text: vert + " "})
	for i, c := range cells {
		line = append(line, c)
		if i < len(cells)-1 {
			line = append(line, segment{text: " " + vert + " "})
		} else {
			line = append(line, segment{text: " " + vert})
		}
	}
	return line
}

func joinSegments(line []segment) string {
	var sb strings.Builder
	for _, s := range line {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// String renders the table without color. Lines are separated by "\n" and
// there is no trailing newline.
func (r *renderer) String() string {
	var sb strings.Builder
	sb.WriteString(r.separator(ruleTop))
	sb.WriteByte('\n')
	sb.WriteString(joinSegments(r.headerSegments(NoColor)))
	sb.WriteByte('\n')
	sb.WriteString(r.separator(ruleMiddle))
	sb.WriteByte('\n')
	for _, row := range r.rows {
		sb.WriteString(joinSegments(r.rowSegments(row)))
		sb.WriteByte('\n')
	}
	sb.WriteString(r.separator(ruleBottom))
	return sb.String()
}

// writeTo streams the table to w one line at a time. Colors are applied only
// when color is true and w is a [ColorSink]; otherwise the bytes written equal
// String().
func (r *renderer) writeTo(w io.Writer, headerColor Color, color bool) error {
	var sink ColorSink
	if color {
		s, ok := w.(ColorSink)
		if ok {
			sink = s
		} else {
			r.log.V(1).Info("writer does not support color, rendering plain", "writer", fmt.Sprintf("%T", w))
		}
	}

	if _, err := io.WriteString(w, r.separator(ruleTop)+"\n"); err != nil {
		return err
	}
	if err := r.writeLine(w, sink, r.headerSegments(headerColor)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.separator(ruleMiddle)+"\n"); err != nil {
		return err
	}
	for _, row := range r.rows {
		if err := r.writeLine(w, sink, r.rowSegments(row)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, r.separator(ruleBottom))
	return err
}

// writeLine writes one header or row line followed by "\n". With a nil sink
// the line is written in one piece.
func (r *renderer) writeLine(w io.Writer, sink ColorSink, line []segment) error {
	if sink == nil {
		_, err := io.WriteString(w, joinSegments(line)+"\n")
		return err
	}

	ambient, err := sink.Foreground()
	if err != nil {
		r.log.V(1).Info("cannot read foreground color", "error", err.Error())
		ambient = NoColor
	}

	var plain strings.Builder
	for _, s := range line {
		if s.color == NoColor {
			plain.WriteString(s.text)
			continue
		}
		if plain.Len() > 0 {
			if _, err := io.WriteString(sink, plain.String()); err != nil {
				return err
			}
			plain.Reset()
		}
		if err := r.writeColored(sink, s, ambient); err != nil {
			return err
		}
	}
	plain.WriteByte('\n')
	_, err = io.WriteString(sink, plain.String())
	return err
}

// writeColored writes s in its color and then restores ambient, even when
// the write fails.
func (r *renderer) writeColored(sink ColorSink, s segment, ambient Color) error {
	if err := sink.SetForeground(s.color); err != nil {
		r.log.V(1).Info("cannot set foreground color", "color", s.color.String(), "error", err.Error())
	}
	defer func() {
		if err := sink.SetForeground(ambient); err != nil {
			r.log.V(1).Info("cannot restore foreground color", "color", ambient.String(), "error", err.Error())
		}
	}()
	_, err := io.WriteString(sink, s.text)
	return err
}

// align pads text to width. Text that is already at least width characters
// long is returned unchanged; it is never truncated. Center alignment puts
// the odd space on the right.
func align(text string, width int, mode Alignment) string {
	pad := width - textWidth(text)
	if pad <= 0 {
		return text
	}
	switch mode {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
	default:
		return text + strings.Repeat(" ", pad)
	}
}
