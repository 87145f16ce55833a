package elementary

import (
	"fmt"
	"strings"
)

// Cell is the state of a single automaton cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Valid reports whether c is one of the two automaton states.
func (c Cell) Valid() bool { return c == Dead || c == Alive }

// Byte returns the textual form of the cell, '0' or '1'.
func (c Cell) Byte() byte {
	if c == Alive {
		return '1'
	}
	return '0'
}

// ParseCell converts '0' or '1' into a Cell.
func ParseCell(b byte) (Cell, error) {
	switch b {
	case '0':
		return Dead, nil
	case '1':
		return Alive, nil
	default:
		return Dead, fmt.Errorf("%w: %q", ErrInvalidCell, b)
	}
}

// Neighborhood is the (left, center, right) triple consulted for one cell.
type Neighborhood struct {
	Left, Center, Right Cell
}

// Index packs the triple into 0..7 with the left cell as the high bit.
func (n Neighborhood) Index() uint8 {
	return uint8(n.Left&1)<<2 | uint8(n.Center&1)<<1 | uint8(n.Right&1)
}

// String returns the three-character form used by settings, e.g. "011".
func (n Neighborhood) String() string {
	return string([]byte{n.Left.Byte(), n.Center.Byte(), n.Right.Byte()})
}

func (n Neighborhood) valid() bool {
	return n.Left.Valid() && n.Center.Valid() && n.Right.Valid()
}

func neighborhoodAt(idx uint8) Neighborhood {
	return Neighborhood{
		Left:   Cell(idx >> 2 & 1),
		Center: Cell(idx >> 1 & 1),
		Right:  Cell(idx & 1),
	}
}

// Neighborhoods lists all eight neighborhoods from "000" to "111".
func Neighborhoods() [8]Neighborhood {
	var out [8]Neighborhood
	for i := range out {
		out[i] = neighborhoodAt(uint8(i))
	}
	return out
}

// ParseNeighborhood parses a three-character string such as "101".
func ParseNeighborhood(s string) (Neighborhood, error) {
	if len(s) != 3 {
		return Neighborhood{}, fmt.Errorf("%w: neighborhood %q must have 3 cells", ErrInvalidCell, s)
	}
	var cells [3]Cell
	for i := 0; i < 3; i++ {
		c, err := ParseCell(s[i])
		if err != nil {
			return Neighborhood{}, fmt.Errorf("neighborhood %q: %w", s, err)
		}
		cells[i] = c
	}
	return Neighborhood{Left: cells[0], Center: cells[1], Right: cells[2]}, nil
}

// Row is one generation of cells.
type Row []Cell

// ParseRow converts a string of '0' and '1' characters into a Row.
func ParseRow(s string) (Row, error) {
	row := make(Row, len(s))
	for i := 0; i < len(s); i++ {
		c, err := ParseCell(s[i])
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		row[i] = c
	}
	return row, nil
}

// String renders the row as '0'/'1' characters.
func (r Row) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, c := range r {
		b.WriteByte(c.Byte())
	}
	return b.String()
}

// Clone returns a copy that does not share storage with r.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Alive counts the live cells in the row.
func (r Row) Alive() int {
	n := 0
	for _, c := range r {
		if c == Alive {
			n++
		}
	}
	return n
}

// Bytes returns the row as 0/1 byte values for render buffers.
func (r Row) Bytes() []uint8 {
	out := make([]uint8, len(r))
	for i, c := range r {
		out[i] = uint8(c)
	}
	return out
}
