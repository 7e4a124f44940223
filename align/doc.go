// Package align computes optimal alignments between two sequences of
// real-valued samples under a threshold-based cost model.
//
// 🚀 What is it?
//
//	A generalisation of edit distance and Dynamic Time Warping: every pair of
//	samples gets a local cost, and a DP grid accumulates the cheapest way to
//	reach each (consumed-x, consumed-y) prefix pair by inserting, deleting or
//	aligning elements. Typical inputs are time series, sensor streams and
//	continuous feature tracks.
//
// ✨ Cost model (Threshold strategy):
//
//	distance = Kernel.Distance(a, b)          // Linear: |a-b|, Quadratic: (a-b)²
//	cost     = distance - Threshold
//	local    = EqualWeight*cost   if cost ≥ 0
//	         = UnequalWeight*cost otherwise   // negative: bonus for close samples
//	score    = Bounds.Clamp(min(insert, align, delete) + local)
//
// The dynamic-time-warping preset (DefaultOptions) uses weights 1, threshold
// 0 and bounds [0, +Inf], i.e. classic unweighted DTW.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvalign/align"
//
//	s := align.DynamicTimeWarping()
//	res, err := s.Align(a, b)
//	if err != nil {
//	  // only grid allocation can fail
//	}
//	fmt.Println(res.Score(), res.Position())
//
// The Result keeps the whole grid (scores plus step masks) so a traceback
// consumer can walk back from Result.Position. Borders are seeded with +Inf;
// once read back through Bounds.Clamp an unreachable border looks exactly like
// a path whose score reached Bounds.Hi.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for the grid plus O(N) for the rolling read buffer
package align
