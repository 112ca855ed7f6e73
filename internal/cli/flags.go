package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bjaus/termtable"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors output written to a terminal unless NO_COLOR is set.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

var _ pflag.Value = (*ColorMode)(nil)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Set implements pflag.Value.
func (m *ColorMode) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto", "":
		*m = ColorAuto
	case "always", "force":
		*m = ColorAlways
	case "never", "off":
		*m = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string { return "mode" }

// output returns the writer to render to and whether color is enabled.
func output(w io.Writer, mode ColorMode) (io.Writer, bool) {
	switch mode {
	case ColorNever:
		return w, false
	case ColorAlways:
		return termtable.NewANSISink(w, termenv.ANSI), true
	}
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return w, false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return w, false
	}
	profile := termenv.NewOutput(f).EnvColorProfile()
	if profile == termenv.Ascii {
		return w, false
	}
	return termtable.NewANSISink(f, profile), true
}

// styleValue adapts termtable.Style to pflag.
type styleValue struct {
	style termtable.Style
}

func (v *styleValue) String() string { return v.style.String() }

func (v *styleValue) Set(s string) error {
	style, err := termtable.ParseStyle(s)
	if err != nil {
		return err
	}
	v.style = style
	return nil
}

func (v *styleValue) Type() string { return "style" }

// ruleValue adapts termtable.RuleMode to pflag.
type ruleValue struct {
	rule termtable.RuleMode
}

func (v *ruleValue) String() string { return v.rule.String() }

func (v *ruleValue) Set(s string) error {
	rule, err := termtable.ParseRuleMode(s)
	if err != nil {
		return err
	}
	v.rule = rule
	return nil
}

func (v *ruleValue) Type() string { return "rule" }

// colorValue adapts termtable.Color to pflag.
type colorValue struct {
	color termtable.Color
}

func (v *colorValue) String() string { return v.color.String() }

func (v *colorValue) Set(s string) error {
	c, err := termtable.ParseColor(s)
	if err != nil {
		return err
	}
	v.color = c
	return nil
}

func (v *colorValue) Type() string { return "color" }

// formatValue adapts termtable.Format to pflag.
type formatValue struct {
	format termtable.Format
}

func (v *formatValue) String() string { return v.format.String() }

func (v *formatValue) Set(s string) error {
	f, err := termtable.ParseFormat(s)
	if err != nil {
		return err
	}
	v.format = f
	return nil
}

func (v *formatValue) Type() string { return "format" }
