// Package bins: breakpoint computation for the equal-width and
// quantile strategies.
package bins

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlbin/quantile"
)

// nanRange scans for the minimum and maximum of the non-NaN values.
// ok is false when every value is NaN.
func nanRange(values []float64) (mn, mx float64, ok bool) {
	mn, mx = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}

	return mn, mx, ok
}

// expandBy returns the symmetric expansion applied to each end of a
// degenerate (zero-width) range: max(|v|, 1) * 0.1%.
func expandBy(v float64) float64 {
	return math.Max(math.Abs(v), 1) * rangeAdjust
}

// equalWidthEdges derives k+1 evenly spaced breakpoints over the
// observed range of the non-missing values.
//
// A degenerate range (all non-missing values equal, including the
// single-value case) is expanded symmetrically by expandBy so the
// assigner never sees a zero-width bucket. A proper range instead gets
// 0.1% padding on the closed side's far edge — first edge down when
// right-closed, last edge up when left-closed — so the extreme value
// that the closed side would otherwise exclude lands inside.
//
// Errors:
//   - ErrAllMissing     — no non-missing values.
//   - ErrInfiniteValues — a ±Inf value was observed.
func equalWidthEdges(values []float64, k int, right bool) ([]float64, error) {
	mn, mx, ok := nanRange(values)
	if !ok {
		return nil, ErrAllMissing
	}
	if math.IsInf(mn, 0) || math.IsInf(mx, 0) {
		return nil, ErrInfiniteValues
	}

	edges := make([]float64, k+1)
	if mn == mx {
		mn -= expandBy(mn)
		mx += expandBy(mx)
		floats.Span(edges, mn, mx)
		edges[0], edges[k] = mn, mx // pin endpoints exactly

		return edges, nil
	}

	floats.Span(edges, mn, mx)
	edges[0], edges[k] = mn, mx
	adj := (mx - mn) * rangeAdjust
	if right {
		edges[0] -= adj
	} else {
		edges[k] += adj
	}

	return edges, nil
}

// spanFracs converts a bin count into k+1 equally spaced fractions in [0, 1].
func spanFracs(k int) []float64 {
	fracs := make([]float64, k+1)
	floats.Span(fracs, 0, 1)
	fracs[0], fracs[k] = 0, 1

	return fracs
}

// checkFracs validates explicit quantile fractions: at least two,
// each inside [0, 1], non-decreasing.
func checkFracs(fracs []float64) error {
	if len(fracs) < 2 {
		return ErrBadBinCount
	}
	for i, q := range fracs {
		if math.IsNaN(q) || q < 0 || q > 1 {
			return ErrBadFraction
		}
		if i > 0 && q < fracs[i-1] {
			return ErrNotMonotonic
		}
	}

	return nil
}

// quantileEdges delegates breakpoint estimation to the configured
// quantile collaborator. Fractions are validated by the caller.
func quantileEdges(values, fracs []float64, qf QuantileFunc) ([]float64, error) {
	if qf == nil {
		qf = quantile.Values
	}
	edges, err := qf(values, fracs)
	switch {
	case errors.Is(err, quantile.ErrNoData):
		return nil, ErrAllMissing
	case err != nil:
		return nil, fmt.Errorf("bins: quantile edges: %w", err)
	}
	if len(edges) != len(fracs) {
		return nil, fmt.Errorf("bins: quantile edges: got %d estimates for %d fractions", len(edges), len(fracs))
	}

	return edges, nil
}
