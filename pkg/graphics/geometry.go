package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point represents a 2D position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// SizeZero is the empty size.
var SizeZero = Size{}

// Pad returns the size grown by padding on every side.
func (s Size) Pad(padding float64) Size {
	return Size{Width: s.Width + padding*2, Height: s.Height + padding*2}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Width and Height are never negative for rectangles produced by layout.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromSize places size at the origin.
func RectFromSize(size Size) Rect {
	return Rect{Width: size.Width, Height: size.Height}
}

// RectFromPointSize constructs a Rect from an origin and a size.
func RectFromPointSize(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X-epsilon && other.Y >= r.Y-epsilon &&
		other.Right() <= r.Right()+epsilon && other.Bottom() <= r.Bottom()+epsilon
}

// Intersects reports whether the two rectangles overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Shrink returns the rect inset by padding on every side, never going
// below zero size.
func (r Rect) Shrink(padding float64) Rect {
	w := math.Max(r.Width-padding*2, 0)
	h := math.Max(r.Height-padding*2, 0)
	return Rect{X: r.X + padding, Y: r.Y + padding, Width: w, Height: h}
}
