package core

import (
	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Frame runs one layout pass and one paint pass for root on a surface of
// the given size and returns the root node.
//
// The root is laid out with limits from zero to size. If the renderer can
// be cleared it is cleared to the palette background first. A panic in a
// widget is recovered and reported; the returned node is nil if layout did
// not finish, and primitives already submitted stay in the renderer.
func Frame(root Element, tree *Tree, th *theme.Theme, r rendering.Renderer, size graphics.Size) (node *layout.Node) {
	defer errors.Recover("core.Frame")

	if tree == nil {
		tree = NewTree(root)
	}
	if th == nil {
		th = theme.Light()
	}

	node = root.Layout(layout.Loose(size))

	if c, ok := r.(rendering.Clearer); ok {
		c.Clear(th.Palette.Background)
	}
	root.Draw(tree, r, th, layout.NewLayout(node), graphics.RectFromSize(size))
	return node
}

// Interaction returns the cursor affordance root requests at cursor, given
// the node produced by Frame.
func Interaction(root Element, tree *Tree, node *layout.Node, cursor mouse.Cursor, size graphics.Size) mouse.Interaction {
	if node == nil {
		return mouse.Idle
	}
	if tree == nil {
		tree = NewTree(root)
	}
	return root.MouseInteraction(tree, layout.NewLayout(node), cursor, graphics.RectFromSize(size))
}
