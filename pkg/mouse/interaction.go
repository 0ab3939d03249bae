package mouse

import (
	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
)

// Interaction is the cursor affordance a widget asks the host to show.
// Names follow the CSS cursor vocabulary.
type Interaction uint8

const (
	// Idle shows the default arrow.
	Idle Interaction = iota
	// Pointer is for links and buttons, usually a pointing hand.
	Pointer
	// Grab is for content that can be dragged.
	Grab
	// Grabbing is for content being dragged.
	Grabbing
	// Text is for selecting and inserting text.
	Text
	// Crosshair is for precise selection.
	Crosshair
	// Working is shown while the program is busy.
	Working
	// NotAllowed is shown when the action cannot be carried out.
	NotAllowed
	// ResizingHorizontally is for east-west resize handles.
	ResizingHorizontally
	// ResizingVertically is for north-south resize handles.
	ResizingVertically
)

var interactionNames = [...]string{
	Idle:                 "idle",
	Pointer:              "pointer",
	Grab:                 "grab",
	Grabbing:             "grabbing",
	Text:                 "text",
	Crosshair:            "crosshair",
	Working:              "working",
	NotAllowed:           "not_allowed",
	ResizingHorizontally: "resizing_horizontally",
	ResizingVertically:   "resizing_vertically",
}

// Interactions lists every affordance in declaration order.
func Interactions() []Interaction {
	out := make([]Interaction, len(interactionNames))
	for i := range out {
		out[i] = Interaction(i)
	}
	return out
}

func (i Interaction) String() string {
	if int(i) < len(interactionNames) {
		return interactionNames[i]
	}
	return "idle"
}

// MarshalText encodes the interaction name.
func (i Interaction) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText decodes an interaction name.
func (i *Interaction) UnmarshalText(text []byte) error {
	for k, name := range interactionNames {
		if name == string(text) {
			*i = Interaction(k)
			return nil
		}
	}
	return &errors.ParseError{Source: "mouse", Field: "interaction", Got: string(text)}
}

// Cursor is the host's knowledge of the pointer position.
type Cursor struct {
	position  graphics.Point
	available bool
}

// Unavailable is a cursor outside the window or not yet known.
var Unavailable = Cursor{}

// Available returns a cursor at position.
func Available(position graphics.Point) Cursor {
	return Cursor{position: position, available: true}
}

// Position returns the cursor position and whether it is known.
func (c Cursor) Position() (graphics.Point, bool) {
	return c.position, c.available
}

// IsOver reports whether the cursor is known and inside bounds.
func (c Cursor) IsOver(bounds graphics.Rect) bool {
	return c.available && bounds.Contains(c.position)
}
