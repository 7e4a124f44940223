// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Grid is the storage capability consumed by alignment strategies.
//
// Cell and SetCell are on the hot path of every fill loop and panic on an
// out-of-range Position, like slice indexing. Use At for a checked read.
type Grid interface {
	Width() int
	Height() int
	Cell(p Position) Cell
	SetCell(p Position, c Cell)
}

// Factory allocates a Grid of the given shape. Every cell, including the
// origin, starts as the zero Cell (score 0, mask None).
type Factory func(width, height int) (Grid, error)

// At returns the cell at p or ErrOutOfRange / ErrNilGrid.
func At(g Grid, p Position) (Cell, error) {
	if g == nil {
		return Cell{}, ErrNilGrid
	}
	if !Contains(g, p) {
		return Cell{}, fmt.Errorf("At%v: %w", p, ErrOutOfRange)
	}

	return g.Cell(p), nil
}

// Contains reports whether p lies inside g.
func Contains(g Grid, p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width() && p.Y < g.Height()
}

// Format renders g row by row (Y outer, X inner) as "score/mask" entries.
// Meant for debugging and the inspect command; O(W·H).
func Format(g Grid) string {
	if g == nil {
		return "<nil>\n"
	}
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.WriteString("[")
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(Position{X: x, Y: y})
			fmt.Fprintf(&b, "%g/%s", c.Score, c.Mask)
			if x < g.Width()-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// checkShape validates dimensions against a cell limit (limit <= 0 means no
// limit beyond integer overflow).
func checkShape(width, height, limit int) error {
	if width <= 0 || height <= 0 {
		return ErrBadShape
	}
	maxInt := int(^uint(0) >> 1)
	if width > maxInt/height {
		return ErrTooLarge
	}
	if limit > 0 && width*height > limit {
		return fmt.Errorf("%d×%d exceeds %d cells: %w", width, height, limit, ErrTooLarge)
	}

	return nil
}
