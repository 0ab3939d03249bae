package mouse

import (
	"encoding/json"
	"fmt"

	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
)

// ScrollUnit is the unit of a ScrollDelta.
type ScrollUnit uint8

const (
	// ScrollLines counts discrete wheel steps.
	ScrollLines ScrollUnit = iota
	// ScrollPixels is a continuous trackpad delta in pixels.
	ScrollPixels
)

func (u ScrollUnit) String() string {
	if u == ScrollPixels {
		return "pixels"
	}
	return "lines"
}

// ScrollDelta is a wheel or trackpad movement. A delta carries a single
// unit; consumers scale lines and pixels differently.
type ScrollDelta struct {
	Unit ScrollUnit
	X, Y float64
}

// Lines returns a line-based delta.
func Lines(x, y float64) ScrollDelta {
	return ScrollDelta{Unit: ScrollLines, X: x, Y: y}
}

// Pixels returns a pixel-based delta.
func Pixels(x, y float64) ScrollDelta {
	return ScrollDelta{Unit: ScrollPixels, X: x, Y: y}
}

// InPixels converts the delta to pixels, scaling lines by lineHeight.
func (d ScrollDelta) InPixels(lineHeight float64) (x, y float64) {
	if d.Unit == ScrollPixels {
		return d.X, d.Y
	}
	return d.X * lineHeight, d.Y * lineHeight
}

type scrollDeltaJSON struct {
	Unit string  `json:"unit"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// MarshalJSON encodes the delta as {"unit":"lines","x":0,"y":-1}.
func (d ScrollDelta) MarshalJSON() ([]byte, error) {
	return json.Marshal(scrollDeltaJSON{Unit: d.Unit.String(), X: d.X, Y: d.Y})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (d *ScrollDelta) UnmarshalJSON(data []byte) error {
	var v scrollDeltaJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.Unit {
	case "lines":
		*d = Lines(v.X, v.Y)
	case "pixels":
		*d = Pixels(v.X, v.Y)
	default:
		return &errors.ParseError{Source: "mouse", Field: "scroll unit", Got: v.Unit}
	}
	return nil
}

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	// KindCursorEntered is sent when the cursor enters the window.
	KindCursorEntered EventKind = iota
	// KindCursorLeft is sent when the cursor leaves the window.
	KindCursorLeft
	// KindCursorMoved carries the new cursor position.
	KindCursorMoved
	// KindButtonPressed carries the pressed button.
	KindButtonPressed
	// KindButtonReleased carries the released button.
	KindButtonReleased
	// KindWheelScrolled carries the scroll delta.
	KindWheelScrolled
)

var eventKindNames = [...]string{
	KindCursorEntered:  "cursor_entered",
	KindCursorLeft:     "cursor_left",
	KindCursorMoved:    "cursor_moved",
	KindButtonPressed:  "button_pressed",
	KindButtonReleased: "button_released",
	KindWheelScrolled:  "wheel_scrolled",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one pointer occurrence. Only the payload field matching Kind is
// meaningful: Button for presses and releases, Position for moves, Delta
// for scrolls. Build events with the constructors so the other fields stay
// zero and events compare equal by value.
type Event struct {
	Kind     EventKind
	Button   Button
	Position graphics.Point
	Delta    ScrollDelta
}

// CursorEntered returns an enter event.
func CursorEntered() Event {
	return Event{Kind: KindCursorEntered}
}

// CursorLeft returns a leave event.
func CursorLeft() Event {
	return Event{Kind: KindCursorLeft}
}

// CursorMoved returns a move event to position.
func CursorMoved(position graphics.Point) Event {
	return Event{Kind: KindCursorMoved, Position: position}
}

// ButtonPressed returns a press event for b.
func ButtonPressed(b Button) Event {
	return Event{Kind: KindButtonPressed, Button: b}
}

// ButtonReleased returns a release event for b.
func ButtonReleased(b Button) Event {
	return Event{Kind: KindButtonReleased, Button: b}
}

// WheelScrolled returns a scroll event.
func WheelScrolled(delta ScrollDelta) Event {
	return Event{Kind: KindWheelScrolled, Delta: delta}
}

func (e Event) String() string {
	switch e.Kind {
	case KindCursorMoved:
		return fmt.Sprintf("%s(%g, %g)", e.Kind, e.Position.X, e.Position.Y)
	case KindButtonPressed, KindButtonReleased:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
	case KindWheelScrolled:
		return fmt.Sprintf("%s(%s %g, %g)", e.Kind, e.Delta.Unit, e.Delta.X, e.Delta.Y)
	default:
		return e.Kind.String()
	}
}

type eventJSON struct {
	Type   string       `json:"type"`
	Button *Button      `json:"button,omitempty"`
	X      *float64     `json:"x,omitempty"`
	Y      *float64     `json:"y,omitempty"`
	Delta  *ScrollDelta `json:"delta,omitempty"`
}

// MarshalJSON encodes the event with a "type" tag and only the payload of
// its kind.
func (e Event) MarshalJSON() ([]byte, error) {
	v := eventJSON{Type: e.Kind.String()}
	switch e.Kind {
	case KindCursorMoved:
		x, y := e.Position.X, e.Position.Y
		v.X, v.Y = &x, &y
	case KindButtonPressed, KindButtonReleased:
		b := e.Button
		v.Button = &b
	case KindWheelScrolled:
		d := e.Delta
		v.Delta = &d
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var v eventJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	kind := -1
	for k, name := range eventKindNames {
		if name == v.Type {
			kind = k
			break
		}
	}
	if kind < 0 {
		return &errors.ParseError{Source: "mouse", Field: "event type", Got: v.Type}
	}

	out := Event{Kind: EventKind(kind)}
	switch out.Kind {
	case KindCursorMoved:
		if v.X == nil || v.Y == nil {
			return &errors.ParseError{Source: "mouse", Field: "cursor position", Got: string(data)}
		}
		out.Position = graphics.Point{X: *v.X, Y: *v.Y}
	case KindButtonPressed, KindButtonReleased:
		if v.Button == nil {
			return &errors.ParseError{Source: "mouse", Field: "button", Got: string(data)}
		}
		out.Button = *v.Button
	case KindWheelScrolled:
		if v.Delta == nil {
			return &errors.ParseError{Source: "mouse", Field: "scroll delta", Got: string(data)}
		}
		out.Delta = *v.Delta
	}
	*e = out
	return nil
}
