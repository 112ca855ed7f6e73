// Package termtable renders rows of text as fixed-width tables for terminals
// and logs.
//
// A [Table] is built from column definitions and rows of values. Values are
// converted to text when the row is added (see [Stringify]); the renderer
// only ever sees text.
//
//	t, err := termtable.New("Name", "Age")
//	if err != nil { ... }
//	_ = t.SetAlignment(1, termtable.AlignRight)
//	t.AddRow("Alice", 30)
//	t.AddRow("Bob", termtable.AlignedCell(5, termtable.AlignCenter))
//	fmt.Println(t)
//
// # Layout
//
// Each column is as wide as the longest of its header, its [Column.MinWidth]
// and its cells, measured in characters. Text is padded, never truncated.
// A cell's own alignment wins over its column's. The output is always a
// separator, the header, a separator, one line per row and a closing
// separator.
//
// # Styles
//
// [Resolve] maps a [Style] to its [BorderSet]:
//
//   - [StyleDefault]: ASCII rules of '-' and '|' borders
//   - [StyleUnicode]: box-drawing characters
//   - [StyleMinimal]: '|' borders and blank rules
//
// Separators are a flat run of the horizontal character by default. Use
// [RuleBoxed] with [Table.SetRule] to draw corner and junction glyphs.
//
// # Color
//
// [Table.String] never contains escape sequences. [Table.RenderTo] and
// [Table.Print] color the header and column text when the writer is a
// [ColorSink], such as an [ANSISink]. Borders and padding keep the sink's
// ambient color, which is restored after every colored segment. Color
// failures never abort rendering.
//
// # Export
//
// [Table.Export] writes the same data as CSV, TSV, Markdown, HTML, JSON,
// JSONL, YAML or through a [GoTemplate].
//
// # Errors
//
// Builder misuse fails fast with a wrapped sentinel:
//
//   - [ErrNoColumns]: a table needs at least one column
//   - [ErrColumnIndex]: setter index out of range
//   - [ErrNegativeWidth]: negative minimum width
//   - [ErrUnsupportedFormat], [ErrInvalidTemplate]: export problems
package termtable
