package bins

// QCut — quantile binning by bin count.
//
// Description:
//
//	Derives k+1 breakpoints from equally spaced fractions in [0, 1] via
//	the quantile collaborator (Options.Quantile, default linear
//	interpolation), producing buckets with an approximately equal share
//	of the population. Always right-closed with the lowest bound
//	inclusive; Options.Right and Options.IncludeLowest are ignored.
//
//	Low-cardinality data can yield equal adjacent breakpoints: the
//	Raise policy (default) fails with ErrDuplicateEdges, Drop collapses
//	the run into fewer, wider buckets. A constant-valued input with
//	k=1 is recovered instead of failing — its single bucket renders as
//	(v-10^-precision, v].
//
// Errors:
//   - ErrEmptyInput / ErrAllMissing — input validation.
//   - ErrBadBinCount — k < 1.
//   - ErrDuplicateEdges — duplicate edges under Raise.
//   - ErrBadPrecision / ErrBadDuplicates / ErrBadLabelMode / ErrLabelCount.
//
// Complexity: O(n·log n) for the quantile estimate, O(n·log k) for
// assignment.
//
// Example:
//
//	opts := bins.DefaultOptions()
//	res, err := bins.QCut(data, 4, &opts)
func QCut(values []float64, k int, opts *Options) (*Result, error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 {
		return nil, ErrBadBinCount
	}

	return qcutFracs(values, spanFracs(k), o)
}

// QCutFracs — quantile binning with explicit fractions in [0, 1].
// Fractions must be non-decreasing; equal fractions produce duplicate
// edges and fall under the duplicates policy.
//
// Errors: as QCut, plus ErrBadFraction and ErrNotMonotonic.
func QCutFracs(values, fracs []float64, opts *Options) (*Result, error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if err = checkFracs(fracs); err != nil {
		return nil, err
	}

	return qcutFracs(values, fracs, o)
}

// qcutFracs runs the quantile pipeline with the qcut fixed orientation:
// right-closed, lowest bound inclusive.
func qcutFracs(values, fracs []float64, o Options) (*Result, error) {
	edges, err := quantileEdges(values, fracs, o.Quantile)
	if err != nil {
		return nil, err
	}
	o.Right = true

	return binsToCuts(values, edges, o, true)
}
