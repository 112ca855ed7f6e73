package termtable

import (
	"fmt"
	"strings"
)

// Style selects the set of characters used to draw table borders.
type Style int

const (
	StyleDefault Style = iota // - |
	StyleUnicode              // ─ │ ┌ ┐ └ ┘ ├ ┤ ┬ ┴ ┼
	StyleMinimal              // | only, rules are blank
)

var styleNames = map[Style]string{
	StyleDefault: "default",
	StyleUnicode: "unicode",
	StyleMinimal: "minimal",
}

// String returns the style name.
func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Styles returns all supported styles in declaration order.
func Styles() []Style {
	return []Style{StyleDefault, StyleUnicode, StyleMinimal}
}

// ParseStyle parses a style name. Matching is case-insensitive and "ascii"
// is accepted for the default style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "ascii", "":
		return StyleDefault, nil
	case "unicode", "box":
		return StyleUnicode, nil
	case "minimal":
		return StyleMinimal, nil
	}
	return StyleDefault, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// BorderSet holds the eleven characters that make up a table style.
type BorderSet struct {
	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
	LeftJunction, RightJunction                rune
	TopJunction, BottomJunction, Cross         rune
}

var borderSets = map[Style]BorderSet{
	StyleDefault: {
		Horizontal: '-', Vertical: '|',
		TopLeft: '-', TopRight: '-', BottomLeft: '-', BottomRight: '-',
		LeftJunction: '-', RightJunction: '-',
		TopJunction: '-', BottomJunction: '-', Cross: '-',
	},
	StyleUnicode: {
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		LeftJunction: '├', RightJunction: '┤',
		TopJunction: '┬', BottomJunction: '┴', Cross: '┼',
	},
	StyleMinimal: {
		Horizontal: ' ', Vertical: '|',
		TopLeft: ' ', TopRight: ' ', BottomLeft: ' ', BottomRight: ' ',
		LeftJunction: ' ', RightJunction: ' ',
		TopJunction: ' ', BottomJunction: ' ', Cross: ' ',
	},
}

// Resolve returns the border characters for style. Unknown styles resolve
// to the default ASCII set.
func Resolve(style Style) BorderSet {
	if bs, ok := borderSets[style]; ok {
		return bs
	}
	return borderSets[StyleDefault]
}
