// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Counter is a stateful widget that counts how many frames drew it.
type Counter struct {
	Initial int
}

// CounterState is the private state of a Counter.
type CounterState struct {
	Draws int
}

func (c Counter) Element() core.Element {
	return core.NewElement(c)
}

func (c Counter) State() any {
	return &CounterState{Draws: c.Initial}
}

func (c Counter) Width() layout.Length  { return layout.Shrink }
func (c Counter) Height() layout.Length { return layout.Shrink }

func (c Counter) Layout(limits layout.Limits) *layout.Node {
	return layout.NewNode(limits.Resolve(layout.Shrink, layout.Shrink, graphics.SizeZero))
}

func (c Counter) Draw(tree *core.Tree, _ rendering.Renderer, _ *theme.Theme, _ layout.Layout, _ graphics.Rect) {
	if s, ok := tree.State.(*CounterState); ok {
		s.Draws++
	}
}
