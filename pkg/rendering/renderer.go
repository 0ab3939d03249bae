// Package rendering defines the drawing sink widgets paint into and the
// backends that implement it.
package rendering

import "github.com/go-drift/lattice/pkg/graphics"

// Quad is a filled, optionally rounded and bordered rectangle.
type Quad struct {
	// Bounds is the absolute rectangle to fill.
	Bounds graphics.Rect
	// BorderRadius is the corner radius applied to all four corners.
	BorderRadius float64
	// BorderWidth is the stroke width drawn inside Bounds.
	BorderWidth float64
	// BorderColor is the stroke color. Ignored when BorderWidth is zero.
	BorderColor graphics.Color
}

// Renderer receives fill primitives during the paint pass.
//
// Widgets never inspect a renderer; it is a pure sink. One renderer is
// written by one paint pass at a time.
type Renderer interface {
	// FillQuad fills quad with background.
	FillQuad(quad Quad, background graphics.Color)
}

// Clearer is implemented by renderers that can reset their surface before
// a new frame.
type Clearer interface {
	Clear(color graphics.Color)
}
