package layout

import (
	"math"

	"github.com/go-drift/lattice/pkg/graphics"
)

// Axis is the main axis along which a flex container places its children.
type Axis uint8

const (
	// AxisHorizontal lays children out left to right.
	AxisHorizontal Axis = iota
	// AxisVertical lays children out top to bottom.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

func (a Axis) main(s graphics.Size) float64 {
	if a == AxisVertical {
		return s.Height
	}
	return s.Width
}

func (a Axis) cross(s graphics.Size) float64 {
	if a == AxisVertical {
		return s.Width
	}
	return s.Height
}

func (a Axis) size(main, cross float64) graphics.Size {
	if a == AxisVertical {
		return graphics.Size{Width: cross, Height: main}
	}
	return graphics.Size{Width: main, Height: cross}
}

func (a Axis) point(main, cross float64) graphics.Point {
	if a == AxisVertical {
		return graphics.Point{X: cross, Y: main}
	}
	return graphics.Point{X: main, Y: cross}
}

func (a Axis) mainLength(item Item) Length {
	if a == AxisVertical {
		return item.Height()
	}
	return item.Width()
}

func (a Axis) limits(mainMax, crossMax float64) Limits {
	return Loose(a.size(mainMax, crossMax))
}

// Alignment positions children along the cross axis.
type Alignment uint8

const (
	// AlignStart places children at the leading edge.
	AlignStart Alignment = iota
	// AlignCenter centers children.
	AlignCenter
	// AlignEnd places children at the trailing edge.
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

func (a Alignment) offset(space, extent float64) float64 {
	switch a {
	case AlignCenter:
		return math.Max((space-extent)/2, 0)
	case AlignEnd:
		return math.Max(space-extent, 0)
	default:
		return 0
	}
}

// Item is anything a flex container can lay out.
type Item interface {
	Width() Length
	Height() Length
	Layout(limits Limits) *Node
}

// Flex describes a single-line flex container.
type Flex struct {
	Axis    Axis
	Width   Length
	Height  Length
	Padding float64
	Spacing float64
	Align   Alignment
}

// Resolve lays out items inside limits and returns the container node.
//
// Items whose main-axis length does not fill are laid out first, each
// receiving whatever main-axis space is left. The remaining space is then
// split among filling items in proportion to their fill factor, carrying
// the rounding fraction from one item to the next so the shares add up to
// the whole. Every child ends up inside the container's bounds.
func (f Flex) Resolve(limits Limits, items []Item) *Node {
	limits = limits.Width(f.Width).Height(f.Height)

	padding := f.Padding
	if padding < 0 {
		padding = 0
	}
	padding = math.Min(padding, math.Min(limits.Max.Width, limits.Max.Height)/2)
	inner := limits.Pad(padding)
	mainMax := f.Axis.main(inner.Max)
	crossMax := f.Axis.cross(inner.Max)

	spacing := math.Max(f.Spacing, 0)
	if gaps := len(items) - 1; gaps > 0 && spacing*float64(gaps) > mainMax {
		spacing = mainMax / float64(gaps)
	}
	used := 0.0
	if len(items) > 1 {
		used = spacing * float64(len(items)-1)
	}

	nodes := make([]*Node, len(items))
	var totalFactor uint32
	var crossSize float64

	for i, item := range items {
		factor := f.Axis.mainLength(item).FillFactor()
		if factor != 0 {
			totalFactor += uint32(factor)
			continue
		}
		n := item.Layout(f.Axis.limits(math.Max(mainMax-used, 0), crossMax))
		used += f.Axis.main(n.Size())
		crossSize = math.Max(crossSize, f.Axis.cross(n.Size()))
		nodes[i] = n
	}

	remaining := math.Max(mainMax-used, 0)
	var allocated, fraction float64
	for i, item := range items {
		factor := f.Axis.mainLength(item).FillFactor()
		if factor == 0 {
			continue
		}
		share := math.Inf(1)
		if !math.IsInf(remaining, 1) {
			exact := remaining*float64(factor)/float64(totalFactor) + fraction
			share = math.Round(exact)
			fraction = exact - share
			share = math.Min(math.Max(share, 0), remaining-allocated)
			allocated += share
		}
		n := item.Layout(f.Axis.limits(share, crossMax))
		used += f.Axis.main(n.Size())
		crossSize = math.Max(crossSize, f.Axis.cross(n.Size()))
		nodes[i] = n
	}

	intrinsic := f.Axis.size(used, crossSize).Pad(padding)
	size := limits.Resolve(f.Width, f.Height, intrinsic)
	innerCross := math.Max(f.Axis.cross(size)-padding*2, 0)

	main := padding
	for _, n := range nodes {
		cross := padding + f.Align.offset(innerCross, f.Axis.cross(n.Size()))
		n.Move(f.Axis.point(main, cross))
		main += f.Axis.main(n.Size()) + spacing
	}

	return WithChildren(size, nodes)
}
