package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Row y holds generation y of a strip.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// SetRow copies cells into row y. Rows outside the grid are ignored and extra
// cells are truncated.
func (g *ByteGrid) SetRow(y int, cells []uint8) bool {
	if y < 0 || y >= g.H {
		return false
	}
	copy(g.data[y*g.W:(y+1)*g.W], cells)
	return true
}

// Row returns a view of row y, or nil when y is out of range.
func (g *ByteGrid) Row(y int) []uint8 {
	if y < 0 || y >= g.H {
		return nil
	}
	return g.data[y*g.W : (y+1)*g.W]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
