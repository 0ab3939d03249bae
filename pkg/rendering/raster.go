package rendering

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/lattice/pkg/graphics"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// Raster is a Renderer that rasterizes quads into an RGBA image with
// anti-aliased rounded corners.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster creates a transparent raster surface of the given pixel size.
func NewRaster(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the whole surface with color.
func (r *Raster) Clear(color graphics.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// FillQuad rasterizes the quad. The border is drawn inside the bounds.
func (r *Raster) FillQuad(quad Quad, background graphics.Color) {
	b := quad.Bounds
	if b.IsEmpty() {
		return
	}
	radius := clampRadius(quad.BorderRadius, b)
	border := math.Min(math.Max(quad.BorderWidth, 0), math.Min(b.Width, b.Height)/2)

	if background.Alpha() > 0 {
		inner := b
		if border > 0 && quad.BorderColor.Alpha() > 0 {
			inner = b.Shrink(border)
		}
		r.fill(background, func(z *vector.Rasterizer) {
			roundedRect(z, inner, math.Max(radius-(b.Width-inner.Width)/2, 0), false)
		})
	}

	if border > 0 && quad.BorderColor.Alpha() > 0 {
		inner := b.Shrink(border)
		r.fill(quad.BorderColor, func(z *vector.Rasterizer) {
			roundedRect(z, b, radius, false)
			if !inner.IsEmpty() {
				roundedRect(z, inner, math.Max(radius-border, 0), true)
			}
		})
	}
}

func (r *Raster) fill(color graphics.Color, path func(z *vector.Rasterizer)) {
	size := r.img.Bounds().Size()
	r.z.Reset(size.X, size.Y)
	r.z.DrawOp = draw.Over
	path(r.z)
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

func clampRadius(radius float64, b graphics.Rect) float64 {
	return math.Min(math.Max(radius, 0), math.Min(b.Width, b.Height)/2)
}

// roundedRect appends a closed rounded rectangle to z. reverse winds the
// path counter-clockwise so it cuts a hole out of an enclosing path.
func roundedRect(z *vector.Rasterizer, b graphics.Rect, radius float64, reverse bool) {
	x0, y0 := float32(b.X), float32(b.Y)
	x1, y1 := float32(b.Right()), float32(b.Bottom())
	rad := float32(radius)
	k := rad * (1 - kappa)

	if rad == 0 {
		if reverse {
			z.MoveTo(x0, y0)
			z.LineTo(x0, y1)
			z.LineTo(x1, y1)
			z.LineTo(x1, y0)
		} else {
			z.MoveTo(x0, y0)
			z.LineTo(x1, y0)
			z.LineTo(x1, y1)
			z.LineTo(x0, y1)
		}
		z.ClosePath()
		return
	}

	if reverse {
		z.MoveTo(x0+rad, y0)
		z.CubeTo(x0+k, y0, x0, y0+k, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.CubeTo(x0, y1-k, x0+k, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.CubeTo(x1-k, y1, x1, y1-k, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.CubeTo(x1, y0+k, x1-k, y0, x1-rad, y0)
		z.ClosePath()
		return
	}

	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	z.ClosePath()
}
