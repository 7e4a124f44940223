package align

import (
	"math"

	"github.com/katalvlaran/lvalign/grid"
)

// unreachable is the border score meaning "no alignment possible". It is
// only ever read back through Bounds.Clamp.
var unreachable = math.Inf(1)

// Threshold is the non-discrete alignment strategy: a weighted, thresholded
// distance accumulated over a DP grid. A *Threshold is immutable and may be
// shared between goroutines; every Align call owns its own grid and buffer.
type Threshold struct {
	equal     float64
	unequal   float64
	threshold float64
	bounds    Bounds
	kernel    Kernel
	newGrid   grid.Factory
}

var _ Strategy = (*Threshold)(nil)

// NewThreshold validates opts and builds a strategy.
//
// Errors:
//   - ErrBadWeight - NaN EqualWeight, UnequalWeight or Threshold.
//   - ErrBadBounds - NaN bound or Lo > Hi.
//   - ErrBadKernel - Kernel is not Linear or Quadratic.
func NewThreshold(opts Options) (*Threshold, error) {
	if math.IsNaN(opts.EqualWeight) || math.IsNaN(opts.UnequalWeight) || math.IsNaN(opts.Threshold) {
		return nil, ErrBadWeight
	}
	if err := opts.Bounds.validate(); err != nil {
		return nil, err
	}
	if !opts.Kernel.valid() {
		return nil, ErrBadKernel
	}
	newGrid := opts.Grid
	if newGrid == nil {
		newGrid = grid.NewDense
	}

	return &Threshold{
		equal:     opts.EqualWeight,
		unequal:   opts.UnequalWeight,
		threshold: opts.Threshold,
		bounds:    opts.Bounds,
		kernel:    opts.Kernel,
		newGrid:   newGrid,
	}, nil
}

// DynamicTimeWarping returns the classic DTW preset (see DefaultOptions).
func DynamicTimeWarping() *Threshold {
	opts := DefaultOptions()

	return &Threshold{
		equal:     opts.EqualWeight,
		unequal:   opts.UnequalWeight,
		threshold: opts.Threshold,
		bounds:    opts.Bounds,
		kernel:    opts.Kernel,
		newGrid:   opts.Grid,
	}
}

// Bounds returns the configured clamp interval.
func (s *Threshold) Bounds() Bounds { return s.bounds }

// Cost returns the local contribution of aligning a with b.
// Distances below the threshold yield a negative cost scaled by the unequal
// weight.
func (s *Threshold) Cost(a, b float64) float64 {
	cost := s.kernel.Distance(a, b) - s.threshold
	if cost >= 0 {
		return s.equal * cost
	}

	return s.unequal * cost
}

// Align fills a (len(x)+1)×(len(y)+1) grid and returns it with the best
// interior score and its position.
//
// The anchor is the first interior cell (row-major, y outer) holding the
// minimum score, except that the terminal cell (len(x), len(y)) wins an exact
// tie. With an empty x or y there is no interior and the anchor is the lowest
// clamped border/origin score, origin first.
//
// The only error is the one returned by the grid factory, passed through
// unchanged.
func (s *Threshold) Align(x, y []float64) (*Result, error) {
	width, height := len(x)+1, len(y)+1
	g, err := s.newGrid(width, height)
	if err != nil {
		return nil, err
	}
	seedBorders(g)

	if len(x) == 0 || len(y) == 0 {
		score, pos := s.borderAnchor(g)

		return NewResult(g, score, pos), nil
	}
	score, pos := s.fill(g, x, y)

	return NewResult(g, score, pos), nil
}

// seedBorders writes the unreachable sentinel into column 0 (Insert) and row
// 0 (Delete). The origin keeps the factory's zero cell.
func seedBorders(g grid.Grid) {
	for y := 1; y < g.Height(); y++ {
		g.SetCell(grid.Pos(0, y), grid.Cell{Score: unreachable, Mask: grid.Insert})
	}
	for x := 1; x < g.Width(); x++ {
		g.SetCell(grid.Pos(x, 0), grid.Cell{Score: unreachable, Mask: grid.Delete})
	}
}

// fill runs the recurrence row by row. Predecessors are read from a rolling
// buffer of previous-row scores plus a carried diagonal; every cell is still
// written to g for traceback.
func (s *Threshold) fill(g grid.Grid, x, y []float64) (float64, grid.Position) {
	terminal := grid.Pos(len(x), len(y))
	sentinel := s.bounds.Clamp(unreachable)

	// row[i] holds the score of (i, j-1) until cell (i, j) overwrites it.
	// row[0] is column 0, which stays at the sentinel.
	row := make([]float64, len(x)+1)
	for i := range row {
		row[i] = sentinel
	}

	var (
		best    float64
		bestPos grid.Position
		found   bool
	)
	for j := 1; j <= len(y); j++ {
		diag := s.bounds.Clamp(0)
		if j > 1 {
			diag = s.bounds.Clamp(g.Cell(grid.Pos(0, j-1)).Score)
		}
		yv := y[j-1]
		for i := 1; i <= len(x); i++ {
			// insert = (i, j-1), align = (i-1, j-1), delete = (i-1, j)
			prev, mask := grid.FromScores(row[i], diag, row[i-1])
			score := s.bounds.Clamp(prev + s.Cost(x[i-1], yv))

			p := grid.Pos(i, j)
			g.SetCell(p, grid.Cell{Score: score, Mask: mask})
			if !found || score < best || (score == best && p == terminal) {
				best, bestPos, found = score, p, true
			}
			diag, row[i] = row[i], score
		}
	}

	return best, bestPos
}

// borderAnchor picks the lowest clamped score among origin and border cells
// in row-major order. Only used when the grid has no interior.
func (s *Threshold) borderAnchor(g grid.Grid) (float64, grid.Position) {
	best := s.bounds.Clamp(g.Cell(grid.Pos(0, 0)).Score)
	var bestPos grid.Position
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Pos(x, y)
			if score := s.bounds.Clamp(g.Cell(p).Score); score < best {
				best, bestPos = score, p
			}
		}
	}

	return best, bestPos
}
