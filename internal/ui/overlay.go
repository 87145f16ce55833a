//go:build ebiten

package ui

import (
	"image/color"

	"eca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minOutlineCell is the smallest cell size, in pixels, that gets an outline.
const minOutlineCell = 3

// Overlay outlines live cells in the stroke color, toggled with G.
type Overlay struct {
	stroke color.RGBA
	show   bool
}

// NewOverlay constructs an overlay that draws outlines in stroke.
func NewOverlay(stroke color.RGBA) *Overlay {
	return &Overlay{stroke: stroke, show: true}
}

// Update toggles the outlines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw strokes the border of every live cell drawn so far.
func (o *Overlay) Draw(screen *ebiten.Image, grid *core.ByteGrid, geom core.Geometry) {
	if !o.show || grid == nil {
		return
	}
	if geom.CellWidth < minOutlineCell || geom.CellHeight < minOutlineCell {
		return
	}
	cells := grid.Cells()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if cells[grid.Index(x, y)] == 0 {
				continue
			}
			px, py := geom.Origin(x, y)
			vector.StrokeRect(screen, float32(px), float32(py), float32(geom.CellWidth), float32(geom.CellHeight), 1, o.stroke, false)
		}
	}
}
