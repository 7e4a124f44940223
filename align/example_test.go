package align_test

import (
	"fmt"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/grid"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDynamicTimeWarping
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two identical two-sample sequences under the classic DTW preset.
//
// Effect:
//
//	Both the first and the last diagonal cell score 0; the anchor lands on
//	the terminal cell, so traceback covers the full alignment.
func ExampleDynamicTimeWarping() {
	res, err := align.DynamicTimeWarping().Align([]float64{1, 2}, []float64{1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%g at %v\n", res.Score(), res.Position())
	// Output:
	// score=0 at (2,2)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewThreshold_bonus
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Samples closer than Threshold=1 earn a negative cost, so long runs of
//	near-equal samples keep lowering the cumulative score until Bounds.Lo.
//
// Options:
//   - EqualWeight = UnequalWeight = 1
//   - Threshold = 1
//   - Bounds = [-10, 10]
func ExampleNewThreshold_bonus() {
	s, err := align.NewThreshold(align.Options{
		EqualWeight:   1,
		UnequalWeight: 1,
		Threshold:     1,
		Bounds:        align.Bounds{Lo: -10, Hi: 10},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, _ := s.Align([]float64{0, 0}, []float64{0, 0})
	fmt.Printf("score=%g at %v\n", res.Score(), res.Position())
	fmt.Print(grid.Format(res.Grid()))
	// Output:
	// score=-3 at (2,2)
	// [0/-, +Inf/D, +Inf/D]
	// [+Inf/I, -1/A, -2/D]
	// [+Inf/I, -2/I, -3/I|D]
}

// ExampleThreshold_Align_gridLimit shows the only failure mode: the grid
// factory refusing the allocation.
func ExampleThreshold_Align_gridLimit() {
	opts := align.DefaultOptions()
	opts.Grid = grid.NewDenseLimited(4)
	s, _ := align.NewThreshold(opts)

	_, err := s.Align([]float64{1, 2}, []float64{1, 2})
	fmt.Println(err)
	// Output:
	// 3×3 exceeds 4 cells: grid: too many cells
}
