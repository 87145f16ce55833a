//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"eca/internal/core"
)

// GridPainter uploads a strip of generations into a single image and draws it
// stretched over the window.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of w cells by h generations.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid and draws it using the per-cell geometry.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, geom core.Geometry) {
	cells := grid.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(geom.CellWidth, geom.CellHeight)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
