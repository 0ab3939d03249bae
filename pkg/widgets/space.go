package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Space is an invisible widget that only takes up room.
type Space struct {
	width  layout.Length
	height layout.Length
}

// NewSpace creates a spacer with the given intents.
func NewSpace(width, height layout.Length) Space {
	return Space{width: width, height: height}
}

// HorizontalSpace creates a spacer of the given width and no height.
func HorizontalSpace(width layout.Length) Space {
	return Space{width: width, height: layout.Shrink}
}

// VerticalSpace creates a spacer of the given height and no width.
func VerticalSpace(height layout.Length) Space {
	return Space{width: layout.Shrink, height: height}
}

// Element wraps the spacer for use in containers.
func (s Space) Element() core.Element {
	return core.NewElement(s)
}

func (s Space) Width() layout.Length {
	return s.width
}

func (s Space) Height() layout.Length {
	return s.height
}

func (s Space) Layout(limits layout.Limits) *layout.Node {
	limits = limits.Width(s.width).Height(s.height)
	return layout.NewNode(limits.Resolve(s.width, s.height, graphics.SizeZero))
}

func (s Space) Draw(*core.Tree, rendering.Renderer, *theme.Theme, layout.Layout, graphics.Rect) {}
