package core

import (
	"testing"

	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

type recordingHandler struct {
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(*errors.Error)           {}
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestFrame_ClearsAndPaints(t *testing.T) {
	rec := &rendering.Recorder{}
	root := NewElement(testLeaf{size: graphics.Size{Width: 20, Height: 10}, color: graphics.ColorGreen})

	node := Frame(root, nil, theme.Dark(), rec, graphics.Size{Width: 100, Height: 100})

	if node.Size() != (graphics.Size{Width: 20, Height: 10}) {
		t.Errorf("unexpected root size %v", node.Size())
	}
	bg, ok := rec.Cleared()
	if !ok || bg != theme.DarkPalette().Background {
		t.Errorf("expected clear to dark background, got %s (%v)", bg.Hex(), ok)
	}
	if rec.Len() != 1 {
		t.Errorf("expected 1 quad, got %d", rec.Len())
	}
}

func TestFrame_RootClampedToSurface(t *testing.T) {
	rec := &rendering.Recorder{}
	root := NewElement(testLeaf{size: graphics.Size{Width: 500, Height: 500}})

	node := Frame(root, nil, nil, rec, graphics.Size{Width: 30, Height: 40})
	if node.Size() != (graphics.Size{Width: 30, Height: 40}) {
		t.Errorf("expected root clamped to 30x40, got %v", node.Size())
	}
}

func TestFrame_UpdatesState(t *testing.T) {
	root := NewElement(testStack{})
	tree := NewTree(root)

	Frame(root, tree, nil, &rendering.Recorder{}, graphics.Size{Width: 10, Height: 10})
	Frame(root, tree, nil, &rendering.Recorder{}, graphics.Size{Width: 10, Height: 10})

	if got := tree.State.(*stackState).draws; got != 2 {
		t.Errorf("expected 2 draws recorded in state, got %d", got)
	}
}

func TestFrame_RecoversPanic(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	root := NewElement(testStack{children: []Element{
		NewElement(testLeaf{size: graphics.Size{Width: 5, Height: 5}, color: graphics.ColorRed}),
		NewElement(panicker{testLeaf{size: graphics.Size{Width: 5, Height: 5}}}),
	}})
	rec := &rendering.Recorder{}

	node := Frame(root, nil, nil, rec, graphics.Size{Width: 10, Height: 10})

	if node == nil {
		t.Error("expected node from completed layout")
	}
	if len(h.panics) != 1 || h.panics[0].Op != "core.Frame" {
		t.Fatalf("expected one panic reported for core.Frame, got %v", h.panics)
	}
	if rec.Len() != 1 {
		t.Errorf("expected the quad painted before the panic to remain, got %d", rec.Len())
	}
}

func TestInteraction(t *testing.T) {
	root := NewElement(testStack{children: []Element{
		NewElement(testLeaf{size: graphics.Size{Width: 10, Height: 10}, hint: mouse.Pointer}),
		NewElement(testLeaf{size: graphics.Size{Width: 10, Height: 10}, hint: mouse.Grab}),
	}})
	size := graphics.Size{Width: 50, Height: 50}
	tree := NewTree(root)
	node := Frame(root, tree, nil, &rendering.Recorder{}, size)

	tests := []struct {
		cursor mouse.Cursor
		want   mouse.Interaction
	}{
		{mouse.Available(graphics.Point{X: 5, Y: 5}), mouse.Pointer},
		{mouse.Available(graphics.Point{X: 5, Y: 15}), mouse.Grab},
		{mouse.Available(graphics.Point{X: 30, Y: 30}), mouse.Idle},
		{mouse.Unavailable, mouse.Idle},
	}
	for _, tt := range tests {
		if got := Interaction(root, tree, node, tt.cursor, size); got != tt.want {
			t.Errorf("Interaction(%v) = %v, want %v", tt.cursor, got, tt.want)
		}
	}
	if Interaction(root, tree, nil, mouse.Available(graphics.Point{}), size) != mouse.Idle {
		t.Error("expected idle without a layout")
	}
}
