package layout

import "github.com/go-drift/lattice/pkg/graphics"

// Node is the placed geometry of one widget: its bounds relative to the
// parent node and its children in paint order.
type Node struct {
	bounds   graphics.Rect
	children []*Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size graphics.Size) *Node {
	return &Node{bounds: graphics.RectFromSize(size)}
}

// WithChildren creates a node of the given size holding children. The
// children keep the positions they were moved to.
func WithChildren(size graphics.Size, children []*Node) *Node {
	return &Node{bounds: graphics.RectFromSize(size), children: children}
}

// Size returns the resolved size of the node.
func (n *Node) Size() graphics.Size {
	return n.bounds.Size()
}

// Bounds returns the node's rectangle relative to its parent.
func (n *Node) Bounds() graphics.Rect {
	return n.bounds
}

// Children returns the child nodes in paint order.
func (n *Node) Children() []*Node {
	return n.children
}

// Move positions the node at p relative to its parent.
func (n *Node) Move(p graphics.Point) *Node {
	n.bounds.X = p.X
	n.bounds.Y = p.Y
	return n
}

// Layout is a node paired with the absolute position of its parent, giving
// absolute bounds for paint and hit testing.
type Layout struct {
	origin graphics.Point
	node   *Node
}

// NewLayout wraps a root node.
func NewLayout(node *Node) Layout {
	return Layout{node: node}
}

// WithOffset wraps node as if its parent sat at origin.
func WithOffset(origin graphics.Point, node *Node) Layout {
	return Layout{origin: origin, node: node}
}

// Node returns the wrapped node.
func (l Layout) Node() *Node {
	return l.node
}

// Position returns the absolute top-left corner.
func (l Layout) Position() graphics.Point {
	b := l.node.Bounds()
	return graphics.Point{X: l.origin.X + b.X, Y: l.origin.Y + b.Y}
}

// Bounds returns the absolute rectangle of the node.
func (l Layout) Bounds() graphics.Rect {
	return graphics.RectFromPointSize(l.Position(), l.node.Size())
}

// Children returns the absolute layouts of the node's children.
func (l Layout) Children() []Layout {
	pos := l.Position()
	out := make([]Layout, len(l.node.children))
	for i, child := range l.node.children {
		out[i] = Layout{origin: pos, node: child}
	}
	return out
}
