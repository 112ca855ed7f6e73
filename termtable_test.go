package termtable_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/termtable"
)

var errSink = errors.New("color unsupported")

// recordingSink writes color changes inline as <name> markers.
type recordingSink struct {
	buf  strings.Builder
	fg   termtable.Color
	sets []termtable.Color
}

func (s *recordingSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *recordingSink) Foreground() (termtable.Color, error) { return s.fg, nil }

func (s *recordingSink) SetForeground(c termtable.Color) error {
	s.sets = append(s.sets, c)
	s.fg = c
	s.buf.WriteString("<" + c.String() + ">")
	return nil
}

// brokenSink accepts text but fails every color operation.
type brokenSink struct {
	buf bytes.Buffer
}

func (s *brokenSink) Write(p []byte) (int, error)          { return s.buf.Write(p) }
func (s *brokenSink) Foreground() (termtable.Color, error) { return termtable.NoColor, errSink }
func (s *brokenSink) SetForeground(termtable.Color) error  { return errSink }

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errSink }

func peopleTable(t *testing.T) *termtable.Table {
	t.Helper()
	tbl, err := termtable.NewWithColumns(
		termtable.NewColumn("Name", termtable.AlignLeft),
		termtable.NewColumn("Age", termtable.AlignRight),
	)
	require.NoError(t, err)
	tbl.AddRow("Alice", 30)
	tbl.AddRow("Bob", 5)
	return tbl
}

// --- Layout ---

func TestStringScenario(t *testing.T) {
	t.Parallel()
	want := "---------------\n" +
		"| Name  | Age |\n" +
		"---------------\n" +
		"| Alice |  30 |\n" +
		"| Bob   |   5 |\n" +
		"---------------"
	assert.Equal(t, want, peopleTable(t).String())
}

func TestStringLineCount(t *testing.T) {
	t.Parallel()
	for n := range 6 {
		tbl, err := termtable.New("A", "B")
		require.NoError(t, err)
		for i := range n {
			tbl.AddRow(i, strings.Repeat("x", i))
		}
		s := tbl.String()
		assert.Equal(t, n+3, strings.Count(s, "\n"))
		lines := strings.Split(s, "\n")
		assert.Len(t, lines, n+4)
		for _, line := range lines {
			assert.Equal(t, len(lines[0]), len(line))
		}
	}
}

func TestStringEmptyTable(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("A")
	require.NoError(t, err)
	assert.Equal(t, "-----\n| A |\n-----\n-----", tbl.String())
}

func TestStringIdempotent(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	assert.Equal(t, tbl.String(), tbl.String())
}

func TestStringUnicodeStyle(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("ID")
	require.NoError(t, err)
	tbl.SetStyle(termtable.StyleUnicode)
	tbl.AddRow(7)
	assert.Equal(t, "──────\n│ ID │\n──────\n│ 7  │\n──────", tbl.String())
}

func TestStringUnicodeBoxed(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("ID", "Item")
	require.NoError(t, err)
	tbl.SetStyle(termtable.StyleUnicode)
	tbl.SetRule(termtable.RuleBoxed)
	tbl.AddRow(1, "Pen")
	want := "┌────┬──────┐\n" +
		"│ ID │ Item │\n" +
		"├────┼──────┤\n" +
		"│ 1  │ Pen  │\n" +
		"└────┴──────┘"
	assert.Equal(t, want, tbl.String())
}

func TestStringMinimalStyle(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("A", "B")
	require.NoError(t, err)
	tbl.SetStyle(termtable.StyleMinimal)
	tbl.AddRow("x", "y")
	blank := strings.Repeat(" ", 9)
	assert.Equal(t, blank+"\n| A | B |\n"+blank+"\n| x | y |\n"+blank, tbl.String())
}

func TestStringCellOverride(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("Name")
	require.NoError(t, err)
	tbl.AddRow("Alice")
	tbl.AddRow(termtable.AlignedCell("Bo", termtable.AlignRight))
	tbl.AddRow("Cy")
	lines := strings.Split(tbl.String(), "\n")
	assert.Equal(t, "| Name  |", lines[1])
	assert.Equal(t, "| Alice |", lines[3])
	assert.Equal(t, "|    Bo |", lines[4])
	assert.Equal(t, "| Cy    |", lines[5])
}

func TestStringCenterOddPadding(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("Label")
	require.NoError(t, err)
	require.NoError(t, tbl.SetAlignment(0, termtable.AlignCenter))
	tbl.AddRow("AB")
	lines := strings.Split(tbl.String(), "\n")
	assert.Equal(t, "| Label |", lines[1])
	assert.Equal(t, "|  AB   |", lines[3])
}

func TestStringMinWidth(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("ID")
	require.NoError(t, err)
	require.NoError(t, tbl.SetMinWidth(0, 8))
	tbl.AddRow(1)
	lines := strings.Split(tbl.String(), "\n")
	assert.Equal(t, strings.Repeat("-", 12), lines[0])
	assert.Equal(t, "| ID       |", lines[1])
	assert.Equal(t, "| 1        |", lines[3])
}

func TestStringMissingCells(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("A", "B", "C")
	require.NoError(t, err)
	require.NoError(t, tbl.SetAlignment(2, termtable.AlignRight))
	tbl.AddRow("only")
	tbl.AddRow("a", "b", "c", "ignored")
	lines := strings.Split(tbl.String(), "\n")
	assert.Equal(t, "| only |   |   |", lines[3])
	assert.Equal(t, "| a    | b | c |", lines[4])
}

func TestStringNeverTruncates(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("z", 40)
	tbl, err := termtable.New("Z")
	require.NoError(t, err)
	tbl.AddRow(long)
	assert.Contains(t, tbl.String(), "| "+long+" |")
}

// --- Builder ---

func TestNewErrors(t *testing.T) {
	t.Parallel()
	_, err := termtable.New()
	require.ErrorIs(t, err, termtable.ErrNoColumns)

	_, err = termtable.NewWithColumns()
	require.ErrorIs(t, err, termtable.ErrNoColumns)

	_, err = termtable.NewWithColumns(termtable.Column{Name: "A", MinWidth: -1})
	require.ErrorIs(t, err, termtable.ErrNegativeWidth)
}

func TestSetterErrors(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("A", "B")
	require.NoError(t, err)

	assert.ErrorIs(t, tbl.SetAlignment(2, termtable.AlignRight), termtable.ErrColumnIndex)
	assert.ErrorIs(t, tbl.SetColumnColor(-1, termtable.Red), termtable.ErrColumnIndex)
	assert.ErrorIs(t, tbl.SetMinWidth(5, 1), termtable.ErrColumnIndex)
	assert.ErrorIs(t, tbl.SetMinWidth(0, -3), termtable.ErrNegativeWidth)

	cols := tbl.Columns()
	assert.Equal(t, termtable.AlignLeft, cols[1].Align)
	assert.Equal(t, 0, cols[0].MinWidth)
}

func TestColumnsReturnsCopy(t *testing.T) {
	t.Parallel()
	src := []termtable.Column{{Name: "A"}}
	tbl, err := termtable.NewWithColumns(src...)
	require.NoError(t, err)
	src[0].Name = "changed"
	cols := tbl.Columns()
	cols[0].Align = termtable.AlignRight
	assert.Equal(t, "A", tbl.Columns()[0].Name)
	assert.Equal(t, termtable.AlignLeft, tbl.Columns()[0].Align)
}

func TestSettersApply(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("A")
	require.NoError(t, err)
	require.NoError(t, tbl.SetAlignment(0, termtable.AlignCenter))
	require.NoError(t, tbl.SetColumnColor(0, termtable.Green))
	require.NoError(t, tbl.SetMinWidth(0, 4))
	tbl.SetStyle(termtable.StyleUnicode)
	assert.Equal(t, termtable.Column{Name: "A", Align: termtable.AlignCenter, MinWidth: 4, Color: termtable.Green}, tbl.Columns()[0])
	assert.Equal(t, termtable.StyleUnicode, tbl.Style())
}

func TestAddRowsVariants(t *testing.T) {
	t.Parallel()
	tbl, err := termtable.New("N")
	require.NoError(t, err)
	tbl.AddRows([]any{1}, []any{2})
	tbl.AddRowsSeq(func(yield func([]any) bool) {
		for _, v := range []any{3, 4} {
			if !yield([]any{v}) {
				return
			}
		}
	})
	ch := make(chan []any, 2)
	ch <- []any{5}
	ch <- []any{6}
	close(ch)
	tbl.AddRowsChan(ch)
	assert.Equal(t, 6, tbl.RowCount())
	out, err := tbl.Marshal(termtable.TSV)
	require.NoError(t, err)
	assert.Equal(t, "N\n1\n2\n3\n4\n5\n6\n", string(out))
}

// --- Cells ---

type stringerVal struct{}

func (stringerVal) String() string { return "custom" }

func TestStringify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{42, "42"},
		{int8(-8), "-8"},
		{int64(1 << 40), "1099511627776"},
		{uint16(7), "7"},
		{49.99, "49.99"},
		{float32(0.5), "0.5"},
		{true, "true"},
		{stringerVal{}, "custom"},
		{errors.New("boom"), "boom"},
		{termtable.AlignedCell(3, termtable.AlignRight), "3"},
		{[]int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.in), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, termtable.Stringify(tt.in))
		})
	}
}

func TestCellAlignment(t *testing.T) {
	t.Parallel()
	c := termtable.NewCell("x")
	_, ok := c.Alignment()
	assert.False(t, ok)

	c = termtable.AlignedCell("x", termtable.AlignCenter)
	a, ok := c.Alignment()
	assert.True(t, ok)
	assert.Equal(t, termtable.AlignCenter, a)
	assert.Equal(t, "x", c.Text())

	// A Cell passed to NewCell keeps its override.
	_, ok = termtable.NewCell(c).Alignment()
	assert.True(t, ok)
}

// --- Color output ---

func TestRenderToPlainMatchesString(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(1, termtable.Green))
	tbl.SetHeaderColor(termtable.Cyan)

	var buf bytes.Buffer
	require.NoError(t, tbl.RenderTo(&buf, false))
	assert.Equal(t, tbl.String(), buf.String())

	// Color requested on a writer without color support falls back to plain.
	buf.Reset()
	require.NoError(t, tbl.RenderTo(&buf, true))
	assert.Equal(t, tbl.String(), buf.String())

	// A color sink with color disabled gets no color changes.
	sink := &recordingSink{}
	require.NoError(t, tbl.RenderTo(sink, false))
	assert.Equal(t, tbl.String(), sink.buf.String())
	assert.Empty(t, sink.sets)
}

func TestRenderToColored(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(1, termtable.Green))
	tbl.SetHeaderColor(termtable.Cyan)

	sink := &recordingSink{}
	require.NoError(t, tbl.RenderTo(sink, true))
	want := "---------------\n" +
		"| <cyan>Name <none> | <cyan>Age<none> |\n" +
		"---------------\n" +
		"| Alice | <green> 30<none> |\n" +
		"| Bob   | <green>  5<none> |\n" +
		"---------------"
	assert.Equal(t, want, sink.buf.String())
}

func TestRenderToNoHeaderColorUsesAmbient(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(0, termtable.Red))

	sink := &recordingSink{}
	require.NoError(t, tbl.RenderTo(sink, true))
	lines := strings.Split(sink.buf.String(), "\n")
	assert.Equal(t, "| Name  | Age |", lines[1])
	assert.Equal(t, "| <red>Alice<none> |  30 |", lines[3])
}

func TestRenderToRestoresAmbient(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(0, termtable.Red))
	tbl.SetHeaderColor(termtable.Blue)

	sink := &recordingSink{fg: termtable.Yellow}
	require.NoError(t, tbl.RenderTo(sink, true))
	assert.Equal(t, termtable.Yellow, sink.fg)
	assert.Equal(t, []termtable.Color{
		termtable.Blue, termtable.Yellow, termtable.Blue, termtable.Yellow,
		termtable.Red, termtable.Yellow,
		termtable.Red, termtable.Yellow,
	}, sink.sets)
}

func TestRenderToSwallowsColorErrors(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(1, termtable.Green))
	tbl.SetHeaderColor(termtable.Cyan)

	var logs []string
	tbl.SetLogger(funcr.New(func(prefix, args string) {
		logs = append(logs, args)
	}, funcr.Options{Verbosity: 1}))

	sink := &brokenSink{}
	require.NoError(t, tbl.RenderTo(sink, true))
	assert.Equal(t, tbl.String(), sink.buf.String())
	assert.NotEmpty(t, logs)
	assert.Contains(t, strings.Join(logs, "\n"), "color unsupported")
}

func TestRenderToWriteError(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	assert.ErrorIs(t, tbl.RenderTo(errWriter{}, false), errSink)
	assert.ErrorIs(t, tbl.Print(errWriter{}), errSink)
}

func TestPrint(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(0, termtable.Red))

	var buf bytes.Buffer
	require.NoError(t, tbl.Print(&buf))
	assert.Equal(t, tbl.String()+"\n", buf.String())

	sink := &recordingSink{}
	require.NoError(t, tbl.Print(sink))
	assert.Contains(t, sink.buf.String(), "<red>Alice<none>")
	assert.True(t, strings.HasSuffix(sink.buf.String(), "---------------\n"))
}

func TestPrintANSISink(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t)
	require.NoError(t, tbl.SetColumnColor(1, termtable.BrightBlue))

	var buf bytes.Buffer
	require.NoError(t, tbl.Print(termtable.NewANSISink(&buf, termenv.ANSI)))
	assert.Contains(t, buf.String(), "| Alice | \x1b[94m 30\x1b[39m |\n")
}

// --- ANSISink ---

func TestANSISink(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := termtable.NewANSISink(&buf, termenv.ANSI)
	assert.Equal(t, termenv.ANSI, s.Profile())

	fg, err := s.Foreground()
	require.NoError(t, err)
	assert.Equal(t, termtable.NoColor, fg)

	require.NoError(t, s.SetForeground(termtable.Red))
	_, err = s.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, s.SetForeground(termtable.NoColor))
	assert.Equal(t, "\x1b[31mhi\x1b[39m", buf.String())

	fg, err = s.Foreground()
	require.NoError(t, err)
	assert.Equal(t, termtable.NoColor, fg)
}

func TestANSISinkAsciiProfile(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := termtable.NewANSISink(&buf, termenv.Ascii)
	require.NoError(t, s.SetForeground(termtable.Green))
	fg, err := s.Foreground()
	require.NoError(t, err)
	assert.Equal(t, termtable.Green, fg)
	assert.Empty(t, buf.String())
}

func TestANSISinkWriteFailureKeepsColor(t *testing.T) {
	t.Parallel()
	s := termtable.NewANSISink(errWriter{}, termenv.ANSI)
	require.ErrorIs(t, s.SetForeground(termtable.Red), errSink)
	fg, err := s.Foreground()
	require.NoError(t, err)
	assert.Equal(t, termtable.NoColor, fg)
}

// --- Enums ---

func TestParseStyle(t *testing.T) {
	t.Parallel()
	for _, s := range termtable.Styles() {
		got, err := termtable.ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := termtable.ParseStyle("ASCII")
	require.NoError(t, err)
	assert.Equal(t, termtable.StyleDefault, got)

	_, err = termtable.ParseStyle("fancy")
	assert.ErrorIs(t, err, termtable.ErrUnknownStyle)
	assert.Equal(t, "Style(9)", termtable.Style(9).String())
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	for _, a := range []termtable.Alignment{termtable.AlignLeft, termtable.AlignCenter, termtable.AlignRight} {
		got, err := termtable.ParseAlignment(strings.ToUpper(a.String()))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := termtable.ParseAlignment("centre")
	require.NoError(t, err)
	assert.Equal(t, termtable.AlignCenter, got)

	_, err = termtable.ParseAlignment("justify")
	assert.ErrorIs(t, err, termtable.ErrUnknownAlignment)
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := map[string]termtable.Color{
		"red":          termtable.Red,
		"Bright-Blue":  termtable.BrightBlue,
		"bright_white": termtable.BrightWhite,
		"brightcyan":   termtable.BrightCyan,
		"gray":         termtable.BrightBlack,
		"none":         termtable.NoColor,
		"":             termtable.NoColor,
	}
	for in, want := range tests {
		got, err := termtable.ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := termtable.ParseColor("chartreuse")
	assert.ErrorIs(t, err, termtable.ErrUnknownColor)
	assert.Equal(t, "bright-magenta", termtable.BrightMagenta.String())
}

func TestParseRuleMode(t *testing.T) {
	t.Parallel()
	got, err := termtable.ParseRuleMode("boxed")
	require.NoError(t, err)
	assert.Equal(t, termtable.RuleBoxed, got)
	assert.Equal(t, "flat", termtable.RuleFlat.String())
	_, err = termtable.ParseRuleMode("wavy")
	assert.ErrorIs(t, err, termtable.ErrUnknownRule)
}

func TestResolve(t *testing.T) {
	t.Parallel()
	def := termtable.Resolve(termtable.StyleDefault)
	assert.Equal(t, '-', def.Horizontal)
	assert.Equal(t, '|', def.Vertical)
	assert.Equal(t, '-', def.Cross)

	uni := termtable.Resolve(termtable.StyleUnicode)
	assert.Equal(t, "─│┌┐└┘├┤┬┴┼", string([]rune{
		uni.Horizontal, uni.Vertical,
		uni.TopLeft, uni.TopRight, uni.BottomLeft, uni.BottomRight,
		uni.LeftJunction, uni.RightJunction,
		uni.TopJunction, uni.BottomJunction, uni.Cross,
	}))

	minimal := termtable.Resolve(termtable.StyleMinimal)
	assert.Equal(t, '|', minimal.Vertical)
	assert.Equal(t, ' ', minimal.Horizontal)
	assert.Equal(t, ' ', minimal.TopLeft)

	assert.Equal(t, def, termtable.Resolve(termtable.Style(-1)))
}
