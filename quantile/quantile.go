package quantile

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrNoData indicates the sample holds no non-missing values.
	ErrNoData = errors.New("quantile: no non-missing data")
	// ErrBadFraction indicates a requested fraction outside [0, 1].
	ErrBadFraction = errors.New("quantile: fractions must lie in [0, 1]")
)

// Values returns the quantile estimate for each fraction in fracs.
// Estimates use linear interpolation between order statistics: for a
// sample of n non-missing values, the estimate for fraction q lies at
// position q·(n-1) in the sorted sample.
//
// NaN values in data are skipped; data itself is left untouched.
//
// Errors:
//   - ErrBadFraction — a fraction is NaN or outside [0, 1].
//   - ErrNoData      — data is empty or entirely NaN.
//
// Complexity: O(n·log n + len(fracs)).
func Values(data, fracs []float64) ([]float64, error) {
	for _, q := range fracs {
		if math.IsNaN(q) || q < 0 || q > 1 {
			return nil, ErrBadFraction
		}
	}

	sorted := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return nil, ErrNoData
	}
	sort.Float64s(sorted)

	out := make([]float64, len(fracs))
	for i, q := range fracs {
		out[i] = at(sorted, q)
	}

	return out, nil
}

// Value is the single-fraction convenience form of Values.
func Value(data []float64, q float64) (float64, error) {
	out, err := Values(data, []float64{q})
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// at evaluates fraction q over an ascending, NaN-free, non-empty sample.
func at(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
