// Package quantile computes linear-interpolation quantile estimates
// over a one-dimensional float64 sample.
//
// For a fraction q in [0, 1] the estimate sits at position q·(n-1) in
// the ascending order statistics, linearly interpolated between the two
// surrounding observations. This is the classic "linear" definition and
// the one the lvlbin/bins engine expects from its quantile collaborator;
// any estimator with the same signature can be substituted through
// bins.Options.Quantile.
//
// NaN inputs are treated as missing and skipped. The input slice is
// never mutated.
package quantile
