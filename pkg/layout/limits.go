package layout

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/go-drift/lattice/pkg/graphics"
)

// Limits is the min/max box a parent passes to a child during layout.
//
// Callers guarantee Min <= Max on each axis; Limits never checks this.
// Max may be +Inf on an axis to express unbounded space.
type Limits struct {
	Min graphics.Size
	Max graphics.Size
}

// NoLimits places no bound on either axis.
var NoLimits = Limits{Max: graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}}

// NewLimits creates limits from a minimum and maximum size.
func NewLimits(min, max graphics.Size) Limits {
	return Limits{Min: min, Max: max}
}

// Tight returns limits that only allow size.
func Tight(size graphics.Size) Limits {
	return Limits{Min: size, Max: size}
}

// Loose returns limits from zero up to max.
func Loose(max graphics.Size) Limits {
	return Limits{Max: max}
}

// Loose returns a copy with the minimum removed.
func (l Limits) Loose() Limits {
	return Limits{Max: l.Max}
}

// Width applies a width intent. A fixed width tightens the axis to the
// clamped value; other intents leave the limits unchanged.
func (l Limits) Width(width Length) Limits {
	if width.Kind() == LengthFixed {
		w := clamp(width.Pixels(), l.Min.Width, l.Max.Width)
		l.Min.Width, l.Max.Width = w, w
	}
	return l
}

// Height applies a height intent. See [Limits.Width].
func (l Limits) Height(height Length) Limits {
	if height.Kind() == LengthFixed {
		h := clamp(height.Pixels(), l.Min.Height, l.Max.Height)
		l.Min.Height, l.Max.Height = h, h
	}
	return l
}

// MaxWidth lowers the maximum width to at most w.
func (l Limits) MaxWidth(w float64) Limits {
	l.Max.Width = clamp(w, l.Min.Width, l.Max.Width)
	return l
}

// MaxHeight lowers the maximum height to at most h.
func (l Limits) MaxHeight(h float64) Limits {
	l.Max.Height = clamp(h, l.Min.Height, l.Max.Height)
	return l
}

// Shrink removes size from both bounds, saturating at zero.
func (l Limits) Shrink(size graphics.Size) Limits {
	return Limits{
		Min: graphics.Size{
			Width:  max(l.Min.Width-size.Width, 0),
			Height: max(l.Min.Height-size.Height, 0),
		},
		Max: graphics.Size{
			Width:  max(l.Max.Width-size.Width, 0),
			Height: max(l.Max.Height-size.Height, 0),
		},
	}
}

// Pad shrinks the limits by padding on every side.
func (l Limits) Pad(padding float64) Limits {
	return l.Shrink(graphics.Size{Width: padding * 2, Height: padding * 2})
}

// Resolve turns width and height intents into a concrete size inside the
// limits. intrinsic is the size the content needs, used by Shrink and as
// the fallback when a fill intent meets an unbounded axis.
//
// Resolution never fails; out-of-range requests are clamped.
func (l Limits) Resolve(width, height Length, intrinsic graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  resolveAxis(width, l.Min.Width, l.Max.Width, intrinsic.Width),
		Height: resolveAxis(height, l.Min.Height, l.Max.Height, intrinsic.Height),
	}
}

func resolveAxis(length Length, lo, hi, intrinsic float64) float64 {
	switch length.Kind() {
	case LengthFixed:
		return clamp(length.Pixels(), lo, hi)
	case LengthFill, LengthFillPortion:
		if !math.IsInf(hi, 1) {
			return hi
		}
	}
	return clamp(intrinsic, lo, hi)
}

// clamp bounds v into [lo, hi]. lo wins if the range is inverted.
func clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
