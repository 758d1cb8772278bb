// Package bins: edge adjustment — precision rounding, uniqueness
// enforcement and deduplication of computed breakpoints.
package bins

import "math"

const (
	// rangeAdjust is the relative epsilon (0.1%) used for boundary
	// padding and degenerate-range expansion.
	rangeAdjust = 0.001

	// maxInferPrecision bounds the precision escalation in inferPrecision.
	maxInferPrecision = 20
)

// roundFrac rounds x for display with a magnitude-aware digit count:
// values with |x| >= 1 round to precision digits after the decimal
// point; values with |x| < 1 round to precision digits past their first
// significant digit, keeping small magnitudes readable. Ties round
// half-to-even. Zero and non-finite values pass through unchanged.
//
// The digit-count formula is historical and exact rounded values are
// load-bearing downstream; do not approximate it.
func roundFrac(x float64, precision int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	whole, frac := math.Modf(x)
	digits := precision
	if whole == 0 {
		digits = -int(math.Floor(math.Log10(math.Abs(frac)))) - 1 + precision
	}
	pow := math.Pow(10, float64(digits))

	return math.RoundToEven(x*pow) / pow
}

// inferPrecision returns the smallest precision in [base, 20) at which
// the rounded edges stay pairwise distinct, falling back to base when
// no precision separates them (e.g. genuinely equal edges).
func inferPrecision(base int, edges []float64) int {
	for p := base; p < maxInferPrecision; p++ {
		if distinctAfterRound(edges, p) {
			return p
		}
	}

	return base
}

// distinctAfterRound reports whether rounding at the given precision
// keeps the ascending edges pairwise distinct. Rounding preserves
// order, so checking adjacent pairs suffices.
func distinctAfterRound(edges []float64, precision int) bool {
	prev := roundFrac(edges[0], precision)
	for _, e := range edges[1:] {
		cur := roundFrac(e, precision)
		if cur == prev {
			return false
		}
		prev = cur
	}

	return true
}

// dedupEdges enforces edge uniqueness under the duplicates policy.
// Exactly two equal edges are kept as-is: that is the single-bin
// degenerate case, recovered downstream by the inclusive-lowest label
// adjustment rather than collapsed to zero buckets.
func dedupEdges(edges []float64, policy Duplicates) ([]float64, error) {
	if len(edges) == 2 {
		return edges, nil
	}
	uniq := make([]float64, 0, len(edges))
	for i, e := range edges {
		if i > 0 && e == uniq[len(uniq)-1] {
			continue
		}
		uniq = append(uniq, e)
	}
	if len(uniq) == len(edges) {
		return edges, nil
	}
	if policy == Drop {
		return uniq, nil
	}

	return nil, ErrDuplicateEdges
}

// dedupNanos is dedupEdges over int64 nanosecond edges.
func dedupNanos(edges []int64, policy Duplicates) ([]int64, error) {
	if len(edges) == 2 {
		return edges, nil
	}
	uniq := make([]int64, 0, len(edges))
	for i, e := range edges {
		if i > 0 && e == uniq[len(uniq)-1] {
			continue
		}
		uniq = append(uniq, e)
	}
	if len(uniq) == len(edges) {
		return edges, nil
	}
	if policy == Drop {
		return uniq, nil
	}

	return nil, ErrDuplicateEdges
}

// checkAscending validates non-decreasing breakpoints; NaN anywhere
// breaks the ordering and is rejected with the same sentinel.
func checkAscending(breaks []float64) error {
	for i, b := range breaks {
		if math.IsNaN(b) {
			return ErrNotMonotonic
		}
		if i > 0 && b < breaks[i-1] {
			return ErrNotMonotonic
		}
	}

	return nil
}
