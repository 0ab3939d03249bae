package rendering

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/go-drift/lattice/pkg/graphics"
)

// Terminal is a Renderer that paints quads onto a grid of character cells
// for previewing layouts in a terminal. Each cell covers CellWidth by
// CellHeight pixels and takes the color of the last quad covering its
// center. Corner radii are ignored.
type Terminal struct {
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []cell
}

type cell struct {
	color graphics.Color
	set   bool
}

// NewTerminal creates a preview grid for a surface of the given pixel size.
func NewTerminal(width, height, cellWidth, cellHeight float64) *Terminal {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	cols := int(math.Ceil(math.Max(width, 0) / cellWidth))
	rows := int(math.Ceil(math.Max(height, 0) / cellHeight))
	return &Terminal{
		cols:  cols,
		rows:  rows,
		cellW: cellWidth,
		cellH: cellHeight,
		cells: make([]cell, cols*rows),
	}
}

// Clear paints every cell with color.
func (t *Terminal) Clear(color graphics.Color) {
	for i := range t.cells {
		t.cells[i] = cell{color: color, set: color.Alpha() > 0}
	}
}

// FillQuad paints the cells whose centers fall inside the quad. Cells
// within BorderWidth of an edge take the border color.
func (t *Terminal) FillQuad(quad Quad, background graphics.Color) {
	b := quad.Bounds
	if b.IsEmpty() {
		return
	}
	inner := b
	if quad.BorderWidth > 0 && quad.BorderColor.Alpha() > 0 {
		inner = b.Shrink(quad.BorderWidth)
	}
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			center := graphics.Point{
				X: (float64(col) + 0.5) * t.cellW,
				Y: (float64(row) + 0.5) * t.cellH,
			}
			if !b.Contains(center) {
				continue
			}
			color := background
			if !inner.Contains(center) {
				color = quad.BorderColor
			}
			t.paint(row*t.cols+col, color)
		}
	}
}

func (t *Terminal) paint(i int, color graphics.Color) {
	a := color.Alpha()
	if a == 0 {
		return
	}
	c := &t.cells[i]
	if c.set && a < 1 {
		c.color = c.color.Mix(color, a)
		return
	}
	c.color = color.WithAlpha(1)
	c.set = true
}

// String renders the grid as ANSI-styled rows of spaces.
func (t *Terminal) String() string {
	var sb strings.Builder
	for row := 0; row < t.rows; row++ {
		start := 0
		for col := 1; col <= t.cols; col++ {
			if col < t.cols && t.cells[row*t.cols+col] == t.cells[row*t.cols+start] {
				continue
			}
			sb.WriteString(t.run(t.cells[row*t.cols+start], col-start))
			start = col
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Terminal) run(c cell, n int) string {
	blank := strings.Repeat(" ", n)
	if !c.set {
		return blank
	}
	return lipgloss.NewStyle().Background(c.color.NRGBA()).Render(blank)
}
