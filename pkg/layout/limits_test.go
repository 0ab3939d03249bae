package layout

import (
	"math"
	"testing"

	"github.com/go-drift/lattice/pkg/graphics"
)

func TestLength(t *testing.T) {
	tests := []struct {
		length Length
		kind   LengthKind
		factor uint16
		str    string
	}{
		{Shrink, LengthShrink, 0, "shrink"},
		{Length{}, LengthShrink, 0, "shrink"},
		{Fill, LengthFill, 1, "fill"},
		{FillPortion(3), LengthFillPortion, 3, "fill_portion(3)"},
		{FillPortion(0), LengthFillPortion, 1, "fill_portion(1)"},
		{Fixed(12.5), LengthFixed, 0, "fixed(12.5)"},
		{Fixed(-4), LengthFixed, 0, "fixed(0)"},
		{Fixed(math.NaN()), LengthFixed, 0, "fixed(0)"},
	}
	for _, tt := range tests {
		if tt.length.Kind() != tt.kind {
			t.Errorf("%v: kind = %v, want %v", tt.length, tt.length.Kind(), tt.kind)
		}
		if tt.length.FillFactor() != tt.factor {
			t.Errorf("%v: factor = %d, want %d", tt.length, tt.length.FillFactor(), tt.factor)
		}
		if tt.length.IsFill() != (tt.factor != 0) {
			t.Errorf("%v: IsFill mismatch", tt.length)
		}
		if got := tt.length.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestResolve(t *testing.T) {
	limits := NewLimits(graphics.Size{Width: 10, Height: 5}, graphics.Size{Width: 100, Height: 50})
	intrinsic := graphics.Size{Width: 30, Height: 70}

	tests := []struct {
		name          string
		width, height Length
		want          graphics.Size
	}{
		{"fixed in range", Fixed(40), Fixed(20), graphics.Size{Width: 40, Height: 20}},
		{"fixed clamped", Fixed(400), Fixed(1), graphics.Size{Width: 100, Height: 5}},
		{"fill takes max", Fill, FillPortion(4), graphics.Size{Width: 100, Height: 50}},
		{"shrink clamps intrinsic", Shrink, Shrink, graphics.Size{Width: 30, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := limits.Resolve(tt.width, tt.height, intrinsic); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_FillUnbounded(t *testing.T) {
	got := NoLimits.Resolve(Fill, Fill, graphics.Size{Width: 12, Height: 7})
	if got != (graphics.Size{Width: 12, Height: 7}) {
		t.Errorf("expected intrinsic size on unbounded axes, got %v", got)
	}
}

func TestResolve_WithinLimits(t *testing.T) {
	values := []float64{0, 0.5, 1, 7, 33.3, 100, 1000}
	lengths := []Length{Shrink, Fill, FillPortion(2), Fixed(0), Fixed(3), Fixed(50), Fixed(5000)}
	intrinsics := []graphics.Size{{}, {Width: 8, Height: 120}, {Width: 2000, Height: 2000}}

	for _, lo := range values {
		for _, hi := range values {
			if lo > hi {
				continue
			}
			limits := NewLimits(graphics.Size{Width: lo, Height: lo}, graphics.Size{Width: hi, Height: hi})
			for _, w := range lengths {
				for _, h := range lengths {
					for _, in := range intrinsics {
						got := limits.Resolve(w, h, in)
						if got.Width < lo || got.Width > hi || got.Height < lo || got.Height > hi {
							t.Fatalf("Resolve(%v, %v, %v) in [%v, %v] = %v", w, h, in, lo, hi, got)
						}
					}
				}
			}
		}
	}
}

func TestLimits_Intents(t *testing.T) {
	limits := Loose(graphics.Size{Width: 100, Height: 100})

	fixed := limits.Width(Fixed(30)).Height(Fixed(300))
	if fixed.Min.Width != 30 || fixed.Max.Width != 30 {
		t.Errorf("expected tight width 30, got %v", fixed)
	}
	if fixed.Min.Height != 100 || fixed.Max.Height != 100 {
		t.Errorf("expected tight height clamped to 100, got %v", fixed)
	}
	if got := limits.Width(Fill).Height(Shrink); got != limits {
		t.Errorf("non-fixed intents should not change limits, got %v", got)
	}
}

func TestLimits_ShrinkAndPad(t *testing.T) {
	limits := NewLimits(graphics.Size{Width: 10, Height: 10}, graphics.Size{Width: 50, Height: 20})

	got := limits.Pad(8)
	want := NewLimits(graphics.Size{Width: 0, Height: 0}, graphics.Size{Width: 34, Height: 4})
	if got != want {
		t.Errorf("Pad(8) = %v, want %v", got, want)
	}
	if got := limits.Shrink(graphics.Size{Width: 100, Height: 100}); got.Max != graphics.SizeZero {
		t.Errorf("expected saturation at zero, got %v", got)
	}
}

func TestLimits_MaxWidthHeight(t *testing.T) {
	limits := NewLimits(graphics.Size{Width: 10, Height: 10}, graphics.Size{Width: 50, Height: 50})

	if got := limits.MaxWidth(20).Max.Width; got != 20 {
		t.Errorf("MaxWidth(20) = %v", got)
	}
	if got := limits.MaxWidth(5).Max.Width; got != 10 {
		t.Errorf("MaxWidth below min should stop at min, got %v", got)
	}
	if got := limits.MaxHeight(80).Max.Height; got != 50 {
		t.Errorf("MaxHeight cannot grow limits, got %v", got)
	}
	if got := limits.Loose(); got.Min != graphics.SizeZero || got.Max != limits.Max {
		t.Errorf("Loose() = %v", got)
	}
	if got := Tight(graphics.Size{Width: 3, Height: 4}); got.Min != got.Max {
		t.Errorf("Tight should have min == max, got %v", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	limits := NewLimits(graphics.Size{Width: 1.1, Height: 2.2}, graphics.Size{Width: 333.3, Height: 77.7})
	a := limits.Resolve(Fixed(123.456), FillPortion(3), graphics.Size{Width: 1, Height: 1})
	b := limits.Resolve(Fixed(123.456), FillPortion(3), graphics.Size{Width: 1, Height: 1})
	if math.Float64bits(a.Width) != math.Float64bits(b.Width) || math.Float64bits(a.Height) != math.Float64bits(b.Height) {
		t.Errorf("Resolve not idempotent: %v vs %v", a, b)
	}
}
