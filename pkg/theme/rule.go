package theme

import (
	"fmt"
	"math"

	"github.com/go-drift/lattice/pkg/graphics"
)

// FillKind identifies a [FillMode] variant.
type FillKind uint8

const (
	// FillFull draws the line across the whole length.
	FillFull FillKind = iota
	// FillPercent draws a centered segment covering a percentage of the length.
	FillPercent
	// FillPadded insets the line equally at both ends.
	FillPadded
	// FillAsymmetric insets the line by separate leading and trailing amounts.
	FillAsymmetric
)

func (k FillKind) String() string {
	switch k {
	case FillPercent:
		return "percent"
	case FillPadded:
		return "padded"
	case FillAsymmetric:
		return "asymmetric"
	default:
		return "full"
	}
}

// FillMode decides how much of its length a rule's line occupies.
// The zero value is Full.
type FillMode struct {
	kind     FillKind
	percent  float64
	leading  float64
	trailing float64
}

// Full returns a FillMode covering the whole length.
func Full() FillMode {
	return FillMode{kind: FillFull}
}

// Percent returns a FillMode covering p percent of the length, centered.
// p is clamped into [0, 100]; NaN becomes 0.
func Percent(p float64) FillMode {
	return FillMode{kind: FillPercent, percent: math.Min(NonNegative(p), 100)}
}

// Padded returns a FillMode inset by px at both ends. Negative and NaN
// insets become 0.
func Padded(px float64) FillMode {
	px = NonNegative(px)
	return FillMode{kind: FillPadded, leading: px, trailing: px}
}

// AsymmetricPadding returns a FillMode inset by leading px at the start and
// trailing px at the end. Negative and NaN insets become 0.
func AsymmetricPadding(leading, trailing float64) FillMode {
	return FillMode{kind: FillAsymmetric, leading: NonNegative(leading), trailing: NonNegative(trailing)}
}

// NonNegative clamps v to zero from below and maps NaN to zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Kind reports the variant.
func (m FillMode) Kind() FillKind {
	return m.kind
}

// Percentage returns the percentage of a Percent mode.
func (m FillMode) Percentage() float64 {
	return m.percent
}

// Padding returns the leading and trailing insets of a padded mode.
func (m FillMode) Padding() (leading, trailing float64) {
	return m.leading, m.trailing
}

// Fill computes the line's offset from the start of space and its length.
// offset+length never exceeds space and neither value is negative.
func (m FillMode) Fill(space float64) (offset, length float64) {
	space = NonNegative(space)
	switch m.kind {
	case FillPercent:
		if m.percent >= 100 {
			return 0, space
		}
		length = space * m.percent / 100
		return space * (1 - m.percent/100) / 2, length
	case FillPadded, FillAsymmetric:
		offset = math.Min(m.leading, space)
		length = math.Max(space-m.leading-m.trailing, 0)
		return offset, length
	default:
		return 0, space
	}
}

func (m FillMode) String() string {
	switch m.kind {
	case FillPercent:
		return fmt.Sprintf("percent(%g)", m.percent)
	case FillPadded:
		return fmt.Sprintf("padded(%g)", m.leading)
	case FillAsymmetric:
		return fmt.Sprintf("asymmetric(%g, %g)", m.leading, m.trailing)
	default:
		return "full"
	}
}

// RuleAppearance is the resolved look of a rule.
type RuleAppearance struct {
	// Color is the line color.
	Color graphics.Color
	// Width is the stroke thickness in pixels.
	Width float64
	// Radius is the corner radius of the line.
	Radius float64
	// FillMode decides how much of the rule's length the line covers.
	FillMode FillMode
}

// RuleStyle selects a rule appearance from a [Theme]. The zero value
// selects the theme default.
type RuleStyle string

// RuleDefault is the theme's default rule style.
const RuleDefault RuleStyle = ""

// defaultRule derives the rule appearance from the palette: a one pixel,
// full-length line in a strong background tone.
func defaultRule(p Palette) RuleAppearance {
	return RuleAppearance{
		Color:    p.Background.Mix(p.Text, 0.4),
		Width:    1,
		Radius:   0,
		FillMode: Full(),
	}
}
