// Package lvalign aligns sequences of real-valued samples: time series,
// sensor streams, continuous feature tracks.
//
// 🚀 What is lvalign?
//
//	A small library that generalises edit distance and Dynamic Time Warping
//	to a threshold-based cost model:
//		• Weighted costs above/below a similarity threshold
//		• Score clamping into a configurable [lo, hi] interval
//		• Linear or quadratic distance kernels
//		• Pluggable grid storage (dense, sparse, or your own)
//
// Layout:
//
//	grid/          - Position, Cell, StepMask and the Grid storage capability
//	align/         - alignment strategies (Threshold, DTW preset) and Result
//	internal/cli/  - the lvalign command (align, batch, inspect)
//	cmd/lvalign/   - binary entry point
//
// Quick example:
//
//	x = [1, 2]       y = [1, 2]
//
//	          x:  -     1     2
//	    y: -   [  0   +Inf  +Inf ]
//	       1   [+Inf    0     1  ]
//	       2   [+Inf    1     0  ]   → best 0 at (2,2)
//
// A Result carries the filled grid and the best-path anchor; walking the step
// masks back from the anchor (traceback) is left to the caller.
package lvalign
