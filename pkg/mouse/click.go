package mouse

import "github.com/go-drift/lattice/pkg/graphics"

// ClickKind classifies a click by its repeat count.
type ClickKind uint8

const (
	// ClickSingle is a lone click.
	ClickSingle ClickKind = iota
	// ClickDouble is the second click of a sequence.
	ClickDouble
	// ClickTriple is the third or later click of a sequence.
	ClickTriple
)

func (k ClickKind) String() string {
	switch k {
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "single"
	}
}

// Click is a recognized click gesture. The host decides when presses form
// a sequence and sets Count accordingly.
type Click struct {
	Button   Button
	Position graphics.Point
	// Count is the position of this click in its sequence, starting at 1.
	Count int
}

// NewClick returns a first click.
func NewClick(b Button, position graphics.Point) Click {
	return Click{Button: b, Position: position, Count: 1}
}

// Repeat returns the next click in the same sequence at position.
func (c Click) Repeat(position graphics.Point) Click {
	return Click{Button: c.Button, Position: position, Count: max(c.Count, 1) + 1}
}

// Kind classifies the click by its count.
func (c Click) Kind() ClickKind {
	switch {
	case c.Count >= 3:
		return ClickTriple
	case c.Count == 2:
		return ClickDouble
	default:
		return ClickSingle
	}
}
