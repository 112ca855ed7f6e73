package termtable

import (
	"io"

	"github.com/muesli/termenv"
)

// ColorSink is a writer whose foreground color can be read and changed.
// The renderer reads the current color before each colored line and
// restores it after every colored segment.
type ColorSink interface {
	io.Writer
	Foreground() (Color, error)
	SetForeground(Color) error
}

// defaultForeground resets the foreground to the terminal default.
const defaultForeground = termenv.CSI + "39m"

// ANSISink is a [ColorSink] that writes ANSI escape sequences to an
// underlying writer. Colors are converted through a termenv profile, so an
// Ascii profile writes text only.
type ANSISink struct {
	w       io.Writer
	profile termenv.Profile
	current Color
}

var _ ColorSink = (*ANSISink)(nil)

// NewANSISink wraps w. The ambient color starts as NoColor.
func NewANSISink(w io.Writer, profile termenv.Profile) *ANSISink {
	return &ANSISink{w: w, profile: profile}
}

// Write writes p unchanged.
func (s *ANSISink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Foreground returns the color most recently set.
func (s *ANSISink) Foreground() (Color, error) {
	return s.current, nil
}

// SetForeground writes the escape sequence for c. The tracked color only
// changes when the write succeeds.
func (s *ANSISink) SetForeground(c Color) error {
	seq := s.sequence(c)
	if seq != "" {
		if _, err := io.WriteString(s.w, seq); err != nil {
			return err
		}
	}
	s.current = c
	return nil
}

// Profile returns the color profile used for conversion.
func (s *ANSISink) Profile() termenv.Profile {
	return s.profile
}

func (s *ANSISink) sequence(c Color) string {
	if s.profile == termenv.Ascii {
		return ""
	}
	if c == NoColor {
		return defaultForeground
	}
	seq := s.profile.Convert(c.ansi()).Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
