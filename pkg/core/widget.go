package core

import (
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Widget is the capability every visual element implements.
type Widget interface {
	// Width returns how the widget wants to occupy the horizontal axis.
	Width() layout.Length
	// Height returns how the widget wants to occupy the vertical axis.
	Height() layout.Length
	// Layout resolves the widget's size inside limits. Children, if any,
	// are placed relative to the returned node.
	Layout(limits layout.Limits) *layout.Node
	// Draw paints the widget at the absolute bounds described by l.
	// The theme must not be modified. viewport is the visible region.
	Draw(tree *Tree, r rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect)
}

// Stateful is implemented by widgets that keep private state between
// frames.
type Stateful interface {
	// State returns the initial state for a new tree node.
	State() any
}

// Container is implemented by widgets with children.
type Container interface {
	Children() []Element
}

// Interactive is implemented by widgets that request a cursor affordance.
type Interactive interface {
	MouseInteraction(tree *Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction
}

// Element is a type-erased widget. The zero Element is empty: it takes no
// space and paints nothing.
type Element struct {
	widget Widget
}

// NewElement wraps w.
func NewElement(w Widget) Element {
	return Element{widget: w}
}

// Widget returns the wrapped widget, or nil for the zero Element.
func (e Element) Widget() Widget {
	return e.widget
}

// Width returns the widget's horizontal intent.
func (e Element) Width() layout.Length {
	if e.widget == nil {
		return layout.Shrink
	}
	return e.widget.Width()
}

// Height returns the widget's vertical intent.
func (e Element) Height() layout.Length {
	if e.widget == nil {
		return layout.Shrink
	}
	return e.widget.Height()
}

// Layout lays out the widget.
func (e Element) Layout(limits layout.Limits) *layout.Node {
	if e.widget == nil {
		return layout.NewNode(limits.Resolve(layout.Shrink, layout.Shrink, graphics.SizeZero))
	}
	return e.widget.Layout(limits)
}

// Draw paints the widget.
func (e Element) Draw(tree *Tree, r rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect) {
	if e.widget == nil {
		return
	}
	e.widget.Draw(tree, r, th, l, viewport)
}

// MouseInteraction returns the widget's requested affordance, or Idle if
// it does not implement Interactive.
func (e Element) MouseInteraction(tree *Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction {
	if i, ok := e.widget.(Interactive); ok {
		return i.MouseInteraction(tree, l, cursor, viewport)
	}
	return mouse.Idle
}

// Children returns the widget's children, or nil for leaves.
func (e Element) Children() []Element {
	if c, ok := e.widget.(Container); ok {
		return c.Children()
	}
	return nil
}
