// Package bins: temporal adapter — timestamps are binned as int64
// nanoseconds and converted back to time.Time on the way out.
package bins

import (
	"math"
	"time"
)

// CutTime — equal-width binning of timestamps by bin count.
//
// Each timestamp is converted to int64 Unix nanoseconds; edge
// computation runs through the numeric pipeline (float64 intermediates,
// truncation toward zero on the way back, matching integer-nanosecond
// semantics), and assignment runs exactly in int64. The zero time.Time
// plays the missing-value role and propagates to CodeMissing.
//
// Breakpoints and interval categories come back as UTC timestamps; no
// precision rounding applies, and the inclusive-lowest adjustment is
// one nanosecond.
//
// Errors: as Cut (ErrEmptyInput, ErrAllMissing, ErrBadBinCount, option
// validation).
func CutTime(values []time.Time, k int, opts *Options) (*TimeResult, error) {
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

	fs, nanos, miss := timeNanos(values)
	edges, err := equalWidthEdges(fs, k, o.Right)
	if err != nil {
		return nil, err
	}

	return nanosToCuts(nanos, miss, truncateNanos(edges), o, o.IncludeLowest)
}

// CutTimeBreaks — binning of timestamps with explicit timestamp
// breakpoints, used verbatim (nanosecond-exact, no padding). Values
// outside the covered range map to the missing sentinel.
//
// Errors: as CutBreaks.
func CutTimeBreaks(values, breaks []time.Time, opts *Options) (*TimeResult, error) {
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
	edges := make([]int64, len(breaks))
	for i, b := range breaks {
		if i > 0 && b.Before(breaks[i-1]) {
			return nil, ErrNotMonotonic
		}
		edges[i] = b.UnixNano()
	}

	_, nanos, miss := timeNanos(values)

	return nanosToCuts(nanos, miss, edges, o, o.IncludeLowest)
}

// QCutTime — quantile binning of timestamps by bin count. Quantile
// estimation runs over float64 nanoseconds; the resulting edges are
// truncated back to integer nanoseconds. Same fixed orientation as
// QCut: right-closed, lowest bound inclusive.
//
// Errors: as QCut.
func QCutTime(values []time.Time, k int, opts *Options) (*TimeResult, error) {
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

	fs, nanos, miss := timeNanos(values)
	edges, err := quantileEdges(fs, spanFracs(k), o.Quantile)
	if err != nil {
		return nil, err
	}
	o.Right = true

	return nanosToCuts(nanos, miss, truncateNanos(edges), o, true)
}

// nanosToCuts is the temporal tail of the pipeline, mirroring
// binsToCuts over int64 nanosecond edges.
func nanosToCuts(nanos []int64, miss []bool, edges []int64, o Options, includeLowest bool) (*TimeResult, error) {
	kept, err := dedupNanos(edges, o.Duplicates)
	if err != nil {
		return nil, err
	}

	res := &TimeResult{
		Codes:  assignNanoCodes(nanos, miss, kept, o.Right, includeLowest),
		Breaks: nanoTimes(kept),
	}
	switch o.Labels {
	case LabelIntervals:
		if res.Categories, err = timeCategories(kept, o.Right, includeLowest); err != nil {
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

// timeNanos converts timestamps to the parallel float64 and int64
// nanosecond views used by edge computation and assignment. Zero
// timestamps become NaN in the float view and are flagged missing.
func timeNanos(values []time.Time) (fs []float64, nanos []int64, miss []bool) {
	fs = make([]float64, len(values))
	nanos = make([]int64, len(values))
	miss = make([]bool, len(values))
	for i, v := range values {
		if v.IsZero() {
			fs[i], miss[i] = math.NaN(), true
			continue
		}
		n := v.UnixNano()
		fs[i], nanos[i] = float64(n), n
	}

	return fs, nanos, miss
}

// truncateNanos converts float64 edges to integer nanoseconds,
// truncating toward zero.
func truncateNanos(edges []float64) []int64 {
	out := make([]int64, len(edges))
	for i, e := range edges {
		out[i] = int64(e)
	}

	return out
}

// nanoTime converts integer nanoseconds back to a UTC timestamp.
func nanoTime(n int64) time.Time { return time.Unix(0, n).UTC() }

// nanoTimes converts a nanosecond edge slice back to UTC timestamps.
func nanoTimes(edges []int64) []time.Time {
	out := make([]time.Time, len(edges))
	for i, e := range edges {
		out[i] = nanoTime(e)
	}

	return out
}
