// Package grid provides the 2D storage used by sequence alignment strategies.
//
// A Grid is addressed by Position{X, Y} in [0,Width)×[0,Height). Each Cell
// holds a cumulative Score and a StepMask recording which predecessor move(s)
// reached that score:
//
//	Insert - consume one element of the Y sequence only   (from (x, y-1))
//	Align  - consume one element of each sequence          (from (x-1, y-1))
//	Delete - consume one element of the X sequence only    (from (x-1, y))
//
// Backends:
//   - Dense  - flat row-major slice, O(W·H) memory, the default.
//   - Sparse - map keyed by Position; unwritten cells read as the zero Cell.
//
// Strategies never pick a backend themselves; they receive a Factory and call
// it once per alignment. Any error from the Factory is the only failure an
// alignment can produce.
//
// Usage:
//
//	g, err := grid.NewDense(4, 3)
//	if err != nil {
//	  // ErrBadShape or ErrTooLarge
//	}
//	g.SetCell(grid.Pos(1, 1), grid.Cell{Score: 2, Mask: grid.Align})
//	fmt.Print(grid.Format(g))
package grid
