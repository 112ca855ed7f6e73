package termtable

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoColumns         = errors.New("at least one column is required")
	ErrColumnIndex       = errors.New("column index out of range")
	ErrNegativeWidth     = errors.New("minimum width must not be negative")
	ErrUnknownStyle      = errors.New("unknown table style")
	ErrUnknownAlignment  = errors.New("unknown alignment")
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownRule       = errors.New("unknown rule mode")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Alignment controls horizontal text alignment within a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses an alignment name. Matching is case-insensitive and
// "centre" is accepted as a synonym for "center".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// RuleMode controls how separator lines are drawn.
type RuleMode int

const (
	// RuleFlat repeats the style's horizontal character across the whole
	// line. This is the default and keeps output stable for callers that
	// compare rendered tables byte for byte.
	RuleFlat RuleMode = iota
	// RuleBoxed composes separators from the style's corner and junction
	// characters. The line width is unchanged.
	RuleBoxed
)

// String returns the rule mode name.
func (m RuleMode) String() string {
	switch m {
	case RuleFlat:
		return "flat"
	case RuleBoxed:
		return "boxed"
	default:
		return fmt.Sprintf("RuleMode(%d)", int(m))
	}
}

// ParseRuleMode parses "flat" or "boxed".
func ParseRuleMode(s string) (RuleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return RuleFlat, nil
	case "boxed", "box":
		return RuleBoxed, nil
	}
	return RuleFlat, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}
