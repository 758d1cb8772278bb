package bins

import (
	"github.com/katalvlaran/lvlbin/interval"
)

// Cut — equal-width binning by bin count.
//
// Description:
//
//	Splits the observed range of the non-missing values into k evenly
//	spaced buckets and assigns every value to one of them. The closed
//	side's far edge is padded by 0.1% of the range so the extreme value
//	the half-open convention would exclude still lands in a bucket; a
//	degenerate range (all values equal) is expanded symmetrically
//	instead.
//
// Errors:
//   - ErrEmptyInput / ErrAllMissing / ErrInfiniteValues — input validation.
//   - ErrBadBinCount — k < 1.
//   - ErrBadPrecision / ErrBadDuplicates / ErrBadLabelMode — option typos.
//   - ErrLabelCount — LabelCustom with a mismatched label count.
//
// Complexity: O(n·log k) for assignment plus O(n) for the range scan.
//
// Example:
//
//	opts := bins.DefaultOptions()
//	res, err := bins.Cut(data, 3, &opts)
func Cut(values []float64, k int, opts *Options) (*Result, error) {
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

	edges, err := equalWidthEdges(values, k, o.Right)
	if err != nil {
		return nil, err
	}

	return binsToCuts(values, edges, o, o.IncludeLowest)
}

// CutBreaks — equal-width binning with explicit caller-supplied
// breakpoints. Breakpoints must be non-decreasing (±Inf endpoints are
// legal) and are used verbatim: no padding is applied, so a value equal
// to the first breakpoint maps to the missing sentinel unless
// Options.IncludeLowest is set. Equal adjacent breakpoints fall under
// the duplicates policy.
//
// Errors: as Cut, plus ErrNotMonotonic and ErrDuplicateEdges.
func CutBreaks(values, breaks []float64, opts *Options) (*Result, error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if len(breaks) < 2 {
		return nil, ErrBadBinCount
	}
	if err = checkAscending(breaks); err != nil {
		return nil, err
	}

	edges := append([]float64(nil), breaks...)

	return binsToCuts(values, edges, o, o.IncludeLowest)
}

// CutIntervals — re-cut new data against previously learned interval
// categories, reusing their edges instead of recomputing. Only
// contiguous, right-closed, ascending categories are accepted. Values
// outside the learned range map to the missing sentinel.
//
// Cutting data and re-cutting any subset of it against the returned
// Categories reproduces the original bucket assignment.
//
// Errors: as Cut, plus ErrBadCategories.
func CutIntervals(values []float64, cats []interval.Interval, opts *Options) (*Result, error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if len(cats) == 0 {
		return nil, ErrBadCategories
	}
	for i, c := range cats {
		if c.Closed != interval.Right || c.Left != c.Left || c.Right < c.Left {
			return nil, ErrBadCategories
		}
		if i > 0 && cats[i-1].Right != c.Left {
			return nil, ErrBadCategories
		}
	}

	edges := make([]float64, len(cats)+1)
	edges[0] = cats[0].Left
	for i, c := range cats {
		edges[i+1] = c.Right
	}

	res := &Result{
		Codes:  assignCodes(values, edges, true, false),
		Breaks: edges,
	}
	switch o.Labels {
	case LabelIntervals:
		// learned categories are returned verbatim: no rounding, no epsilon
		res.Categories = append([]interval.Interval(nil), cats...)
	case LabelCustom:
		if res.Labels, err = customLabels(o.CustomLabels, len(cats)); err != nil {
			return nil, err
		}
	case LabelCodes:
	}

	return res, nil
}

// binsToCuts is the shared tail of the pipeline: duplicates policy →
// bucket assignment → label resolution.
func binsToCuts(values, edges []float64, o Options, includeLowest bool) (*Result, error) {
	kept, err := dedupEdges(edges, o.Duplicates)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Codes:  assignCodes(values, kept, o.Right, includeLowest),
		Breaks: kept,
	}
	switch o.Labels {
	case LabelIntervals:
		if res.Categories, err = intervalCategories(kept, o.Right, includeLowest, o.Precision); err != nil {
			return nil, err
		}
	case LabelCustom:
		if res.Labels, err = customLabels(o.CustomLabels, len(kept)-1); err != nil {
			return nil, err
		}
	case LabelCodes:
	}

	return res, nil
}
