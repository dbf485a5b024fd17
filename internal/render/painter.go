//go:build ebiten

package render

import (
	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on cell data and stretches it
// over the viewport, one rectangle per cell.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled to the
// destination bounds.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), gp.palette.Alive, gp.palette.Dead)
	gp.img.WritePixels(gp.buf)

	b := dst.Bounds()
	l := NewLayout(g.Size(), float64(b.Dx()), float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(l.CellW, l.CellH)
	dst.DrawImage(gp.img, op)
}
