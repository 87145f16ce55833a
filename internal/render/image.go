package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"eca/internal/elementary"
)

// ImageRenderer accumulates generations into an image with one pixel per cell.
type ImageRenderer struct {
	img     *image.RGBA
	palette Palette
}

// NewImageRenderer allocates a cells x rows image filled with the dead color.
func NewImageRenderer(cells, rows int, p Palette) *ImageRenderer {
	if cells <= 0 {
		cells = 1
	}
	if rows <= 0 {
		rows = 1
	}
	r := &ImageRenderer{img: image.NewRGBA(image.Rect(0, 0, cells, rows)), palette: p}
	fillBinaryRGBA(r.img.Pix, make([]uint8, cells*rows), p)
	return r
}

// RenderRow paints generation as image row y = generation.
func (r *ImageRenderer) RenderRow(generation int, row elementary.Row) error {
	b := r.img.Bounds()
	if generation < 0 || generation >= b.Dy() {
		return fmt.Errorf("generation %d outside image height %d", generation, b.Dy())
	}
	if len(row) != b.Dx() {
		return fmt.Errorf("row has %d cells, image is %d wide", len(row), b.Dx())
	}
	start := r.img.PixOffset(0, generation)
	fillBinaryRGBA(r.img.Pix[start:start+4*len(row)], row.Bytes(), r.palette)
	return nil
}

// Image returns the backing image.
func (r *ImageRenderer) Image() *image.RGBA { return r.img }

// Scaled returns the strip stretched to width x height with hard cell edges.
func (r *ImageRenderer) Scaled(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return r.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), r.img, r.img.Bounds(), xdraw.Src, nil)
	return dst
}

// WritePNG encodes the strip scaled to width x height. Zero dimensions keep
// one pixel per cell.
func (r *ImageRenderer) WritePNG(w io.Writer, width, height int) error {
	return png.Encode(w, r.Scaled(width, height))
}
