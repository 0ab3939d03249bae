package layout

import "fmt"

// LengthKind identifies how a widget wants to occupy one axis.
type LengthKind uint8

const (
	// LengthShrink takes the minimum space needed to contain the content.
	LengthShrink LengthKind = iota
	// LengthFill takes all the available space.
	LengthFill
	// LengthFillPortion takes a weighted share of the space left to
	// filling siblings.
	LengthFillPortion
	// LengthFixed takes an exact number of pixels.
	LengthFixed
)

func (k LengthKind) String() string {
	switch k {
	case LengthFill:
		return "fill"
	case LengthFillPortion:
		return "fill_portion"
	case LengthFixed:
		return "fixed"
	default:
		return "shrink"
	}
}

// Length is a widget's sizing intent along one axis.
//
// The zero value is Shrink. Construct the other variants with [Fixed],
// [FillPortion], or the [Fill] value.
type Length struct {
	kind    LengthKind
	pixels  float64
	portion uint16
}

var (
	// Shrink sizes the widget to its content.
	Shrink = Length{kind: LengthShrink}
	// Fill expands the widget to the available space.
	Fill = Length{kind: LengthFill}
)

// Fixed returns a Length of exactly px pixels. Negative values become 0.
func Fixed(px float64) Length {
	if px < 0 || px != px {
		px = 0
	}
	return Length{kind: LengthFixed, pixels: px}
}

// FillPortion returns a Length that fills a share of the available space
// proportional to weight among filling siblings. A weight of 0 becomes 1.
func FillPortion(weight uint16) Length {
	if weight == 0 {
		weight = 1
	}
	return Length{kind: LengthFillPortion, portion: weight}
}

// Kind reports the variant of the length.
func (l Length) Kind() LengthKind {
	return l.kind
}

// Pixels returns the fixed size, or 0 for non-fixed lengths.
func (l Length) Pixels() float64 {
	return l.pixels
}

// FillFactor returns the weight the length contributes when distributing
// remaining space: 1 for Fill, the portion for FillPortion, 0 otherwise.
func (l Length) FillFactor() uint16 {
	switch l.kind {
	case LengthFill:
		return 1
	case LengthFillPortion:
		return l.portion
	default:
		return 0
	}
}

// IsFill reports whether the length expands into available space.
func (l Length) IsFill() bool {
	return l.FillFactor() != 0
}

func (l Length) String() string {
	switch l.kind {
	case LengthFixed:
		return fmt.Sprintf("fixed(%g)", l.pixels)
	case LengthFillPortion:
		return fmt.Sprintf("fill_portion(%d)", l.portion)
	default:
		return l.kind.String()
	}
}
