package render

import (
	"image/color"

	"conway/internal/core"
)

// Palette picks the fill color for live and dead cells.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette paints live cells blue on a red background.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0, G: 120, B: 242, A: 255},
		Dead:  color.RGBA{R: 230, G: 41, B: 56, A: 255},
	}
}

// Color returns the fill for a cell state.
func (p Palette) Color(alive bool) color.Color {
	if alive {
		return p.Alive
	}
	return p.Dead
}

// Rect is a filled rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Layout maps grid cells onto a viewport. Cells stretch to fill the viewport
// exactly, so they need not be square or integral.
type Layout struct {
	CellW, CellH float64
}

// NewLayout sizes cells so the grid covers a viewportW x viewportH area.
func NewLayout(size core.Size, viewportW, viewportH float64) Layout {
	if size.W <= 0 || size.H <= 0 {
		return Layout{}
	}
	return Layout{CellW: viewportW / float64(size.W), CellH: viewportH / float64(size.H)}
}

// Rect returns the rectangle covered by cell (x, y).
func (l Layout) Rect(x, y int) Rect {
	return Rect{X: float64(x) * l.CellW, Y: float64(y) * l.CellH, W: l.CellW, H: l.CellH}
}

// EachRect visits every cell's rectangle and state in row-major order.
func EachRect(g *core.Grid, viewportW, viewportH float64, fn func(r Rect, alive bool)) {
	l := NewLayout(g.Size(), viewportW, viewportH)
	g.Each(func(x, y int, alive bool) {
		fn(l.Rect(x, y), alive)
	})
}
