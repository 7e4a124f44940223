// SPDX-License-Identifier: MIT

package grid

// Sparse stores only written cells. Reads of unwritten positions return the
// zero Cell, so the origin default holds without an explicit write.
type Sparse struct {
	w, h  int
	cells map[Position]Cell
}

var _ Grid = (*Sparse)(nil)

// NewSparse allocates a w×h Sparse grid. It satisfies Factory.
// Only overflow is checked; storage grows with writes.
func NewSparse(width, height int) (Grid, error) {
	if err := checkShape(width, height, 0); err != nil {
		return nil, err
	}

	return &Sparse{w: width, h: height, cells: make(map[Position]Cell)}, nil
}

func (s *Sparse) Width() int  { return s.w }
func (s *Sparse) Height() int { return s.h }

// Cell returns the stored cell or the zero Cell. Panics if p is out of range.
func (s *Sparse) Cell(p Position) Cell {
	s.check(p)

	return s.cells[p]
}

// SetCell stores c at p. Panics if p is out of range.
func (s *Sparse) SetCell(p Position, c Cell) {
	s.check(p)
	s.cells[p] = c
}

// Len reports how many cells have been written.
func (s *Sparse) Len() int { return len(s.cells) }

func (s *Sparse) check(p Position) {
	if p.X < 0 || p.X >= s.w || p.Y < 0 || p.Y >= s.h {
		panic(ErrOutOfRange)
	}
}
