// Package mouse models pointing-device input: buttons, events, scroll
// deltas, recognized clicks, and the cursor affordances a widget may
// request from the host.
//
// The package holds data only. Routing events to widgets, hover and focus
// tracking, and multi-click timing belong to the host.
package mouse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/lattice/pkg/errors"
)

type buttonKind uint8

const (
	buttonLeft buttonKind = iota
	buttonRight
	buttonMiddle
	buttonOther
)

// Button identifies a physical mouse button.
//
// Buttons are comparable. The zero value is Left.
type Button struct {
	kind buttonKind
	code uint16
}

var (
	// Left is the primary button.
	Left = Button{kind: buttonLeft}
	// Right is the secondary button.
	Right = Button{kind: buttonRight}
	// Middle is the wheel button.
	Middle = Button{kind: buttonMiddle}
)

// Other returns a button outside the named set, identified by the
// platform code.
func Other(code uint16) Button {
	return Button{kind: buttonOther, code: code}
}

// Code returns the platform code of an Other button, and ok=false for the
// named buttons.
func (b Button) Code() (code uint16, ok bool) {
	return b.code, b.kind == buttonOther
}

func (b Button) String() string {
	switch b.kind {
	case buttonRight:
		return "right"
	case buttonMiddle:
		return "middle"
	case buttonOther:
		return fmt.Sprintf("other(%d)", b.code)
	default:
		return "left"
	}
}

// MarshalText encodes the button as "left", "right", "middle" or
// "other(N)".
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes the form written by MarshalText.
func (b *Button) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "left":
		*b = Left
		return nil
	case "right":
		*b = Right
		return nil
	case "middle":
		*b = Middle
		return nil
	}
	if strings.HasPrefix(s, "other(") && strings.HasSuffix(s, ")") {
		code, err := strconv.ParseUint(s[len("other("):len(s)-1], 10, 16)
		if err == nil {
			*b = Other(uint16(code))
			return nil
		}
	}
	return &errors.ParseError{Source: "mouse", Field: "button", Got: s}
}
