package core

// Size describes the dimensions of a render surface or grid.
type Size struct {
	W int
	H int
}

// Geometry holds the size of one cell on a drawing surface.
type Geometry struct {
	CellWidth  float64
	CellHeight float64
}

// GeometryFor splits a surface of the given size into cells columns and rows
// rows. Non-positive counts yield a zero geometry.
func GeometryFor(surfaceW, surfaceH, cells, rows int) Geometry {
	if cells <= 0 || rows <= 0 {
		return Geometry{}
	}
	return Geometry{
		CellWidth:  float64(surfaceW) / float64(cells),
		CellHeight: float64(surfaceH) / float64(rows),
	}
}

// Origin returns the top-left corner of cell x in generation y.
func (g Geometry) Origin(x, y int) (float64, float64) {
	return float64(x) * g.CellWidth, float64(y) * g.CellHeight
}
