package termtable

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Color is a foreground color token. The zero value, NoColor, means the
// sink's ambient color is left alone.
type Color int

const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = []string{
	NoColor:       "none",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

// String returns the color name.
func (c Color) String() string {
	if c >= NoColor && int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor parses a color name such as "red" or "bright-blue". Case,
// underscores and spaces are ignored, and "gray"/"grey" map to
// BrightBlack.
func ParseColor(s string) (Color, error) {
	key := strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "", "default", "ambient":
		return NoColor, nil
	case "gray", "grey", "darkgray", "darkgrey":
		return BrightBlack, nil
	}
	for i, name := range colorNames {
		if strings.ReplaceAll(name, "-", "") == key {
			return Color(i), nil
		}
	}
	return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ansi maps c onto the 16-color ANSI palette. NoColor and unknown values
// map to termenv.NoColor.
func (c Color) ansi() termenv.Color {
	if c <= NoColor || c > BrightWhite {
		return termenv.NoColor{}
	}
	return termenv.ANSIColor(c - 1)
}
