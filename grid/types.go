// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"strings"
)

// Position addresses one cell. X counts consumed elements of the first
// sequence, Y of the second.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String implements fmt.Stringer as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// StepMask is a set of predecessor moves.
type StepMask uint8

const (
	// Insert consumes one Y element only; predecessor is (x, y-1).
	Insert StepMask = 1 << iota
	// Align consumes one element of each sequence; predecessor is (x-1, y-1).
	Align
	// Delete consumes one X element only; predecessor is (x-1, y).
	Delete
)

// None is the empty mask carried by the origin cell.
const None StepMask = 0

// Has reports whether every bit of s is set in m.
func (m StepMask) Has(s StepMask) bool {
	return s != None && m&s == s
}

// String renders the mask as a compact glyph set, e.g. "I|A" or "-".
func (m StepMask) String() string {
	if m == None {
		return "-"
	}
	parts := make([]string, 0, 3)
	if m.Has(Insert) {
		parts = append(parts, "I")
	}
	if m.Has(Align) {
		parts = append(parts, "A")
	}
	if m.Has(Delete) {
		parts = append(parts, "D")
	}

	return strings.Join(parts, "|")
}

// FromScores returns the minimum of the three predecessor scores and the mask
// of every move that reaches it. Ties set several bits.
// If every score is NaN the minimum is NaN and the mask is None.
func FromScores(ins, aln, del float64) (float64, StepMask) {
	best := ins
	if aln < best || math.IsNaN(best) {
		best = aln
	}
	if del < best || math.IsNaN(best) {
		best = del
	}

	var mask StepMask
	if ins == best {
		mask |= Insert
	}
	if aln == best {
		mask |= Align
	}
	if del == best {
		mask |= Delete
	}

	return best, mask
}

// Cell is the per-position payload of a Grid.
type Cell struct {
	Score float64
	Mask  StepMask
}
