package align

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvalign/grid"
)

// Strategy turns two sequences into a filled grid and a best-path anchor.
// Implementations must not retain x or y after returning.
type Strategy interface {
	Align(x, y []float64) (*Result, error)
}

// Kernel selects how the distance between two samples is measured.
type Kernel int

const (
	// Linear is the one-dimensional Euclidean distance sqrt((a-b)²) = |a-b|.
	Linear Kernel = iota

	// Quadratic is the squared difference (a-b)².
	Quadratic
)

// Distance returns the kernel distance between a and b.
func (k Kernel) Distance(a, b float64) float64 {
	squared := (a - b) * (a - b)
	if k == Quadratic {
		return squared
	}

	return math.Sqrt(squared)
}

// String returns "linear" or "quadratic".
func (k Kernel) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

func (k Kernel) valid() bool {
	return k == Linear || k == Quadratic
}

// ParseKernel maps "linear"/"quadratic" (case-insensitive) to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "quadratic":
		return Quadratic, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadKernel)
}

// Bounds is the inclusive interval [Lo, Hi] every accumulated score is
// clamped into.
type Bounds struct {
	Lo, Hi float64
}

// Clamp returns v limited to [Lo, Hi]. NaN passes through unchanged.
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Lo {
		return b.Lo
	}
	if v > b.Hi {
		return b.Hi
	}

	return v
}

// Contains reports whether Lo <= v <= Hi.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

func (b Bounds) validate() error {
	if math.IsNaN(b.Lo) || math.IsNaN(b.Hi) || b.Lo > b.Hi {
		return fmt.Errorf("[%g, %g]: %w", b.Lo, b.Hi, ErrBadBounds)
	}

	return nil
}

// Options configures a Threshold strategy.
//
// Fields:
//   - EqualWeight   - multiplier for local costs ≥ 0 (distance at or above Threshold).
//   - UnequalWeight - multiplier for local costs < 0 (distance below Threshold).
//   - Threshold     - distance that separates "close enough" from "different".
//   - Bounds        - clamp interval applied after every step.
//   - Kernel        - distance kernel, Linear by default.
//   - Grid          - grid allocator; nil means grid.NewDense.
type Options struct {
	EqualWeight   float64
	UnequalWeight float64
	Threshold     float64
	Bounds        Bounds
	Kernel        Kernel
	Grid          grid.Factory
}

// DefaultOptions returns the dynamic-time-warping preset:
// weights 1, threshold 0, bounds [0, +Inf], Linear kernel, Dense grid.
func DefaultOptions() Options {
	return Options{
		EqualWeight:   1,
		UnequalWeight: 1,
		Threshold:     0,
		Bounds:        Bounds{Lo: 0, Hi: math.Inf(1)},
		Kernel:        Linear,
		Grid:          grid.NewDense,
	}
}

// Result bundles a filled grid with its best-path anchor.
// It is read-only once built and owns the grid.
type Result struct {
	g     grid.Grid
	score float64
	pos   grid.Position
}

// NewResult wraps g, the best score and the position where it was found.
func NewResult(g grid.Grid, score float64, pos grid.Position) *Result {
	return &Result{g: g, score: score, pos: pos}
}

// Grid returns the filled grid.
func (r *Result) Grid() grid.Grid { return r.g }

// Score returns the best cumulative score.
func (r *Result) Score() float64 { return r.score }

// Position returns where Score was found; traceback starts here.
func (r *Result) Position() grid.Position { return r.pos }

// Width is len(x)+1.
func (r *Result) Width() int { return r.g.Width() }

// Height is len(y)+1.
func (r *Result) Height() int { return r.g.Height() }
