package widgets

import (
	"math"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Rule draws a horizontal or vertical line for dividing content.
//
// A horizontal rule fills the available width and occupies a fixed
// height; the line itself is centered vertically inside that space. Its
// thickness, color, corner radius and how much of the width it covers come
// from the theme's [theme.RuleAppearance] for the rule's style.
//
//	widgets.Horizontal(16)
//	widgets.Vertical(8).Style("separator")
type Rule struct {
	width      layout.Length
	height     layout.Length
	horizontal bool
	style      theme.RuleStyle
}

// Horizontal creates a rule that fills the available width and occupies
// height pixels of vertical space.
func Horizontal(height float64) Rule {
	return Rule{
		width:      layout.Fill,
		height:     layout.Fixed(height),
		horizontal: true,
		style:      theme.RuleDefault,
	}
}

// Vertical creates a rule that fills the available height and occupies
// width pixels of horizontal space.
func Vertical(width float64) Rule {
	return Rule{
		width:  layout.Fixed(width),
		height: layout.Fill,
		style:  theme.RuleDefault,
	}
}

// Style returns a copy of the rule using style.
func (r Rule) Style(style theme.RuleStyle) Rule {
	r.style = style
	return r
}

// StyleKey returns the rule's style.
func (r Rule) StyleKey() theme.RuleStyle {
	return r.style
}

// IsHorizontal reports the rule's orientation.
func (r Rule) IsHorizontal() bool {
	return r.horizontal
}

// Element wraps the rule for use in containers.
func (r Rule) Element() core.Element {
	return core.NewElement(r)
}

func (r Rule) Width() layout.Length {
	return r.width
}

func (r Rule) Height() layout.Length {
	return r.height
}

func (r Rule) Layout(limits layout.Limits) *layout.Node {
	limits = limits.Width(r.width).Height(r.height)
	return layout.NewNode(limits.Resolve(r.width, r.height, graphics.SizeZero))
}

func (r Rule) Draw(_ *core.Tree, renderer rendering.Renderer, th *theme.Theme, l layout.Layout, _ graphics.Rect) {
	bounds := l.Bounds()
	appearance := th.RuleAppearance(r.style)
	renderer.FillQuad(rendering.Quad{
		Bounds:       r.lineBounds(bounds, appearance),
		BorderRadius: theme.NonNegative(appearance.Radius),
		BorderWidth:  0,
		BorderColor:  graphics.ColorTransparent,
	}, appearance.Color)
}

// lineBounds centers a stroke of the appearance's width across the rule's
// cross axis, rounding to whole pixels, and lets the fill mode place it
// along the main axis.
func (r Rule) lineBounds(bounds graphics.Rect, a theme.RuleAppearance) graphics.Rect {
	stroke := theme.NonNegative(a.Width)
	if r.horizontal {
		y := math.Round(bounds.Y + bounds.Height/2 - stroke/2)
		offset, length := a.FillMode.Fill(bounds.Width)
		return graphics.Rect{X: bounds.X + offset, Y: y, Width: length, Height: stroke}
	}
	x := math.Round(bounds.X + bounds.Width/2 - stroke/2)
	offset, length := a.FillMode.Fill(bounds.Height)
	return graphics.Rect{X: x, Y: bounds.Y + offset, Width: stroke, Height: length}
}
