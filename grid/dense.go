// SPDX-License-Identifier: MIT

package grid

// DefaultMaxCells caps Dense allocations made through NewDense.
// 1<<28 cells of 16 bytes is 4 GiB, far beyond any sane alignment.
const DefaultMaxCells = 1 << 28

// Dense is a row-major grid. Cells of row y occupy data[y*w : (y+1)*w].
type Dense struct {
	w, h int
	data []Cell
}

// compile-time check
var _ Grid = (*Dense)(nil)

// NewDense allocates a w×h Dense grid of zero cells.
// It satisfies Factory. Errors: ErrBadShape, ErrTooLarge (DefaultMaxCells).
// Complexity: O(w·h) time and memory.
func NewDense(width, height int) (Grid, error) {
	return newDense(width, height, DefaultMaxCells)
}

// NewDenseLimited returns a Factory that allocates Dense grids of at most
// maxCells cells. maxCells <= 0 removes the limit (overflow is still checked).
func NewDenseLimited(maxCells int) Factory {
	return func(width, height int) (Grid, error) {
		return newDense(width, height, maxCells)
	}
}

func newDense(width, height, limit int) (*Dense, error) {
	if err := checkShape(width, height, limit); err != nil {
		return nil, err
	}

	return &Dense{w: width, h: height, data: make([]Cell, width*height)}, nil
}

// Width returns the number of columns.
func (d *Dense) Width() int { return d.w }

// Height returns the number of rows.
func (d *Dense) Height() int { return d.h }

// Cell returns the cell at p. Panics if p is out of range.
func (d *Dense) Cell(p Position) Cell {
	return d.data[d.index(p)]
}

// SetCell stores c at p. Panics if p is out of range.
func (d *Dense) SetCell(p Position, c Cell) {
	d.data[d.index(p)] = c
}

// Row returns a copy of row y.
func (d *Dense) Row(y int) []Cell {
	if y < 0 || y >= d.h {
		panic(ErrOutOfRange)
	}
	out := make([]Cell, d.w)
	copy(out, d.data[y*d.w:(y+1)*d.w])

	return out
}

// index computes the flat offset; a column outside [0,w) would silently land
// in a neighbouring row, so it is checked explicitly.
func (d *Dense) index(p Position) int {
	if p.X < 0 || p.X >= d.w || p.Y < 0 || p.Y >= d.h {
		panic(ErrOutOfRange)
	}

	return p.Y*d.w + p.X
}
