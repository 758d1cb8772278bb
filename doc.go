// Package lvlbin discretizes one-dimensional numeric or timestamp data
// into contiguous, non-overlapping intervals — the classic cut/qcut
// workflow, as a small pure-Go library.
//
// 🚀 What is lvlbin?
//
//	A lean, dependency-light toolkit that brings together:
//		• Equal-width binning: split the observed (or supplied) range
//		  into k evenly spaced buckets
//		• Quantile binning: buckets holding an approximately equal
//		  share of the population
//		• Half-open interval algebra with a configurable closed side
//		• Missing-value and out-of-range propagation to a sentinel
//		• Timestamp binning (nanosecond-exact) via the same engine
//
// ✨ Why choose lvlbin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – precision-aware edge rounding, no hidden state
//   - Pure functions – every call is independent and side-effect-free,
//     so concurrent use on disjoint inputs needs no locking
//   - Extensible – swap in your own quantile estimator via a narrow seam
//
// Under the hood, everything is organized under three subpackages:
//
//	bins/     — the engine: Cut, QCut and friends, bucket assignment,
//	            label resolution, temporal adapter
//	interval/ — Interval & TimeInterval value objects (closed-side aware)
//	quantile/ — linear-interpolation quantile estimates
//
// Quick ASCII example:
//
//	    (-0.001 ── 0.25](0.25 ── 0.5](0.5 ── 0.75](0.75 ── 1]
//
//	four right-closed buckets covering [0, 1], lowest bound nudged
//	below the data minimum so the minimum itself is captured.
//
// Dive into the per-package example_test.go files for full
// walkthroughs.
//
//	go get github.com/katalvlaran/lvlbin
package lvlbin
