package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Row lays out its children left to right.
//
// Children that fill the row's width share whatever the other children
// leave, in proportion to their fill portion.
//
//	widgets.NewRow(
//		left.Element(),
//		widgets.Vertical(9).Element(),
//		right.Element(),
//	).WithSpacing(8)
type Row struct {
	flex     layout.Flex
	children []core.Element
}

// NewRow creates a row that shrinks to fit its children.
func NewRow(children ...core.Element) Row {
	return Row{
		flex:     layout.Flex{Axis: layout.AxisHorizontal, Width: layout.Shrink, Height: layout.Shrink},
		children: children,
	}
}

// Push returns a copy of the row with child appended.
func (r Row) Push(child core.Element) Row {
	r.children = append(append([]core.Element(nil), r.children...), child)
	return r
}

// WithWidth returns a copy of the row with the given width intent.
func (r Row) WithWidth(width layout.Length) Row {
	r.flex.Width = width
	return r
}

// WithHeight returns a copy of the row with the given height intent.
func (r Row) WithHeight(height layout.Length) Row {
	r.flex.Height = height
	return r
}

// WithPadding returns a copy of the row with uniform padding.
func (r Row) WithPadding(padding float64) Row {
	r.flex.Padding = padding
	return r
}

// WithSpacing returns a copy of the row with the gap between children.
func (r Row) WithSpacing(spacing float64) Row {
	r.flex.Spacing = spacing
	return r
}

// WithAlign returns a copy of the row with vertical child alignment.
func (r Row) WithAlign(align layout.Alignment) Row {
	r.flex.Align = align
	return r
}

// Element wraps the row for use in containers.
func (r Row) Element() core.Element {
	return core.NewElement(r)
}

func (r Row) Width() layout.Length  { return r.flex.Width }
func (r Row) Height() layout.Length { return r.flex.Height }

func (r Row) Children() []core.Element { return r.children }

func (r Row) Layout(limits layout.Limits) *layout.Node {
	return r.flex.Resolve(limits, items(r.children))
}

func (r Row) Draw(tree *core.Tree, renderer rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect) {
	drawChildren(r.children, tree, renderer, th, l, viewport)
}

func (r Row) MouseInteraction(tree *core.Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction {
	return childInteraction(r.children, tree, l, cursor, viewport)
}

// Column lays out its children top to bottom.
//
// Children that fill the column's height share whatever the other
// children leave, in proportion to their fill portion.
type Column struct {
	flex     layout.Flex
	children []core.Element
}

// NewColumn creates a column that shrinks to fit its children.
func NewColumn(children ...core.Element) Column {
	return Column{
		flex:     layout.Flex{Axis: layout.AxisVertical, Width: layout.Shrink, Height: layout.Shrink},
		children: children,
	}
}

// Push returns a copy of the column with child appended.
func (c Column) Push(child core.Element) Column {
	c.children = append(append([]core.Element(nil), c.children...), child)
	return c
}

// WithWidth returns a copy of the column with the given width intent.
func (c Column) WithWidth(width layout.Length) Column {
	c.flex.Width = width
	return c
}

// WithHeight returns a copy of the column with the given height intent.
func (c Column) WithHeight(height layout.Length) Column {
	c.flex.Height = height
	return c
}

// WithPadding returns a copy of the column with uniform padding.
func (c Column) WithPadding(padding float64) Column {
	c.flex.Padding = padding
	return c
}

// WithSpacing returns a copy of the column with the gap between children.
func (c Column) WithSpacing(spacing float64) Column {
	c.flex.Spacing = spacing
	return c
}

// WithAlign returns a copy of the column with horizontal child alignment.
func (c Column) WithAlign(align layout.Alignment) Column {
	c.flex.Align = align
	return c
}

// Element wraps the column for use in containers.
func (c Column) Element() core.Element {
	return core.NewElement(c)
}

func (c Column) Width() layout.Length  { return c.flex.Width }
func (c Column) Height() layout.Length { return c.flex.Height }

func (c Column) Children() []core.Element { return c.children }

func (c Column) Layout(limits layout.Limits) *layout.Node {
	return c.flex.Resolve(limits, items(c.children))
}

func (c Column) Draw(tree *core.Tree, renderer rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect) {
	drawChildren(c.children, tree, renderer, th, l, viewport)
}

func (c Column) MouseInteraction(tree *core.Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction {
	return childInteraction(c.children, tree, l, cursor, viewport)
}

func items(children []core.Element) []layout.Item {
	out := make([]layout.Item, len(children))
	for i, child := range children {
		out[i] = child
	}
	return out
}

// drawChildren paints every child whose bounds touch the viewport.
func drawChildren(children []core.Element, tree *core.Tree, r rendering.Renderer, th *theme.Theme, l layout.Layout, viewport graphics.Rect) {
	for i, child := range l.Children() {
		if i >= len(children) {
			break
		}
		if !touches(child.Bounds(), viewport) {
			continue
		}
		children[i].Draw(tree.Child(i), r, th, child, viewport)
	}
}

// childInteraction returns the affordance of the first child under the
// cursor that asks for one.
func childInteraction(children []core.Element, tree *core.Tree, l layout.Layout, cursor mouse.Cursor, viewport graphics.Rect) mouse.Interaction {
	for i, child := range l.Children() {
		if i >= len(children) {
			break
		}
		if !cursor.IsOver(child.Bounds()) {
			continue
		}
		if in := children[i].MouseInteraction(tree.Child(i), child, cursor, viewport); in != mouse.Idle {
			return in
		}
	}
	return mouse.Idle
}

// touches reports whether a and b overlap or share an edge. Zero-area
// bounds on the viewport edge still count.
func touches(a, b graphics.Rect) bool {
	return a.X <= b.Right() && b.X <= a.Right() && a.Y <= b.Bottom() && b.Y <= a.Bottom()
}
