// Package bins discretizes one-dimensional numeric or timestamp
// sequences into contiguous, non-overlapping buckets.
//
// 🚀 What is bins?
//
//	The engine behind lvlbin: assign every input value to an ordinal
//	bucket code, an interval category, or a caller-supplied label.
//	Two strategies are provided:
//	  • Equal-width — k evenly spaced buckets across the observed
//	    (or explicitly supplied) value range
//	  • Quantile — buckets holding an approximately equal share of
//	    the population, edges estimated by linear interpolation
//
// ✨ Key features:
//   - half-open buckets with a configurable closed side ((l, r] or [l, r))
//   - precision-aware edge rounding for readable, deterministic categories
//   - degenerate ranges (constant input, single value) recovered by a
//     symmetric 0.1% expansion instead of failing
//   - duplicate quantile edges: fail fast (Raise) or collapse (Drop)
//   - missing and out-of-range values propagate to CodeMissing, never error
//   - re-cut new data against previously learned interval categories
//   - timestamps binned as int64 nanoseconds and converted back
//
// ⚙️ Usage:
//
//	opts := bins.DefaultOptions()
//	res, err := bins.Cut([]float64{0.2, 1.4, 2.5, 6.2, 9.7, 2.1}, 3, &opts)
//	if err != nil {
//	  // handle ErrEmptyInput, ErrBadBinCount, ...
//	}
//	fmt.Println(res.Codes)      // [0 0 0 1 2 0]
//	fmt.Println(res.Categories) // [(0.19, 3.367] (3.367, 6.533] (6.533, 9.7]]
//
// The pipeline is a straight chain of pure transformations — edge
// computation → edge adjustment → bucket assignment → label resolution —
// with no shared state, so concurrent calls on disjoint inputs are safe.
//
// See example_test.go for worked scenarios and docs in types.go for the
// full option surface.
package bins
