// Package bins: sentinel error set. All entry points return these
// sentinels and tests check them via errors.Is. User-triggered
// conditions never panic. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match with errors.Is.

package bins

import "errors"

var (
	// ErrEmptyInput indicates an empty input sequence.
	ErrEmptyInput = errors.New("bins: input values must be non-empty")

	// ErrAllMissing indicates every input value is missing (NaN, or the
	// zero time.Time for timestamp entry points), so no range exists.
	ErrAllMissing = errors.New("bins: input values are all missing")

	// ErrInfiniteValues indicates ±Inf input with an integer bin count;
	// an infinite observed range has no finite equal-width partition.
	// Explicit infinite breakpoints remain legal.
	ErrInfiniteValues = errors.New("bins: cannot compute equal-width bins over infinite values")

	// ErrBadBinCount indicates a bin count below 1, or fewer than two
	// explicit breakpoints / quantile fractions.
	ErrBadBinCount = errors.New("bins: bin count must be at least 1")

	// ErrNotMonotonic indicates explicit breakpoints or quantile
	// fractions that decrease somewhere (NaN counts as a violation).
	ErrNotMonotonic = errors.New("bins: breakpoints must increase monotonically")

	// ErrDuplicateEdges indicates equal adjacent bin edges under the
	// Raise duplicates policy. Use Drop to collapse them instead.
	ErrDuplicateEdges = errors.New("bins: bin edges must be unique")

	// ErrBadFraction indicates a quantile fraction outside [0, 1].
	ErrBadFraction = errors.New("bins: quantile fractions must lie in [0, 1]")

	// ErrLabelCount indicates custom labels whose count does not match
	// the number of buckets.
	ErrLabelCount = errors.New("bins: number of labels must be one fewer than the number of bin edges")

	// ErrBadDuplicates indicates an unrecognized Duplicates policy value.
	ErrBadDuplicates = errors.New("bins: duplicates policy must be Raise or Drop")

	// ErrBadLabelMode indicates an unrecognized LabelMode value.
	ErrBadLabelMode = errors.New("bins: label mode must be LabelIntervals, LabelCodes or LabelCustom")

	// ErrBadPrecision indicates a negative rounding precision.
	ErrBadPrecision = errors.New("bins: precision must be at least 1")

	// ErrBadCategories indicates re-cut categories that are not a
	// contiguous, right-closed, ascending interval sequence.
	ErrBadCategories = errors.New("bins: categories must be contiguous right-closed intervals")
)
