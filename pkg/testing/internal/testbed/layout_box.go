package testbed

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// LayoutBox is a fixed-size colored box for layout testing. A zero color
// paints nothing. Interaction is requested while the cursor is over it.
type LayoutBox struct {
	Size        graphics.Size
	Color       graphics.Color
	Interaction mouse.Interaction
}

// Box creates a box of the given size and color.
func Box(width, height float64, color graphics.Color) LayoutBox {
	return LayoutBox{Size: graphics.Size{Width: width, Height: height}, Color: color}
}

func (b LayoutBox) Element() core.Element {
	return core.NewElement(b)
}

func (b LayoutBox) Width() layout.Length  { return layout.Fixed(b.Size.Width) }
func (b LayoutBox) Height() layout.Length { return layout.Fixed(b.Size.Height) }

func (b LayoutBox) Layout(limits layout.Limits) *layout.Node {
	w, h := b.Width(), b.Height()
	return layout.NewNode(limits.Width(w).Height(h).Resolve(w, h, b.Size))
}

func (b LayoutBox) Draw(_ *core.Tree, r rendering.Renderer, _ *theme.Theme, l layout.Layout, _ graphics.Rect) {
	if b.Color == 0 {
		return
	}
	r.FillQuad(rendering.Quad{Bounds: l.Bounds()}, b.Color)
}

func (b LayoutBox) MouseInteraction(_ *core.Tree, l layout.Layout, cursor mouse.Cursor, _ graphics.Rect) mouse.Interaction {
	if cursor.IsOver(l.Bounds()) {
		return b.Interaction
	}
	return mouse.Idle
}
