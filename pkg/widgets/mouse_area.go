package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// MouseArea requests a cursor affordance while the pointer is over its
// content. The content is laid out and painted unchanged.
//
//	widgets.NewMouseArea(widgets.Vertical(8).Element(), mouse.ResizingHorizontally)
type MouseArea struct {
	content     core.Element
	interaction mouse.Interaction
}

// NewMouseArea wraps content.
func NewMouseArea(content core.Element, interaction mouse.Interaction) MouseArea {
	return MouseArea{content: content, interaction: interaction}
}

// Element wraps the area for use in containers.
func (m MouseArea) Element() core.Element {
	return core.NewElement(m)
}

func (m MouseArea) Width() layout.Length     { return m.content.Width() }
func (m MouseArea) Height() layout.Length    { return m.content.Height() }
func (m MouseArea) Children() []core.Element { return []core.Element{m.content} }

func (m MouseArea) Layout(limits layout.Limits) *layout.Node {
	child := m.content.Layout(limits)
	return layout.WithChildren(child.Size(), []*layout.Node{child})
}

func (m MouseArea) Draw(tree *core.Tree, r rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect) {
	m.content.Draw(tree.Child(0), r, th, l.Children()[0], viewport)
}

// MouseInteraction prefers the content's own affordance.
func (m MouseArea) MouseInteraction(tree *core.Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction {
	if !cursor.IsOver(l.Bounds()) {
		return mouse.Idle
	}
	if in := m.content.MouseInteraction(tree.Child(0), l.Children()[0], cursor, viewport); in != mouse.Idle {
		return in
	}
	return m.interaction
}
