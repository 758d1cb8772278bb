// Package bins: option surface, policy enumerations and result types.
package bins

import (
	"strconv"
	"time"

	"github.com/katalvlaran/lvlbin/interval"
)

// CodeMissing is the sentinel bucket code for missing input values and
// for values falling outside the covered range. Both collapse to the
// same observable sentinel; the engine does not distinguish them.
const CodeMissing = -1

// Duplicates selects the behavior when computed bin edges are not
// unique (typically under quantile binning of low-cardinality data).
type Duplicates int

const (
	// Raise fails with ErrDuplicateEdges when adjacent edges are equal.
	// This is the default: silent collapse would hide a real cardinality
	// mismatch between the requested bin count and the data.
	Raise Duplicates = iota

	// Drop collapses runs of equal edges, producing fewer, wider buckets.
	Drop
)

// String returns "raise" or "drop", or "duplicates(n)" for unknown values.
func (d Duplicates) String() string {
	switch d {
	case Raise:
		return "raise"
	case Drop:
		return "drop"
	default:
		return "duplicates(" + strconv.Itoa(int(d)) + ")"
	}
}

// LabelMode selects what each bucket maps to in the result.
type LabelMode int

const (
	// LabelIntervals maps each bucket to its Interval category (default).
	LabelIntervals LabelMode = iota

	// LabelCodes produces raw zero-based bucket codes only; no interval
	// objects are constructed.
	LabelCodes

	// LabelCustom maps buckets to Options.CustomLabels; the label count
	// must equal the number of buckets.
	LabelCustom
)

// String returns the mode name, or "labelmode(n)" for unknown values.
func (m LabelMode) String() string {
	switch m {
	case LabelIntervals:
		return "intervals"
	case LabelCodes:
		return "codes"
	case LabelCustom:
		return "custom"
	default:
		return "labelmode(" + strconv.Itoa(int(m)) + ")"
	}
}

// QuantileFunc estimates breakpoint values for fractions in [0, 1] over
// a sample. It must skip NaN inputs and return one estimate per
// fraction. The default is quantile.Values (linear interpolation); any
// estimator with compatible semantics can be substituted.
type QuantileFunc func(data, fracs []float64) ([]float64, error)

// Options configures a binning call.
//
// Fields:
//   - Right         — true (default) closes the upper endpoint: (l, r].
//     false mirrors everything: [l, r), top-edge padding, side flips.
//   - IncludeLowest — force the lowest boundary inclusive. Data-derived
//     ranges already capture their minimum via edge padding; this flag
//     matters for explicit breakpoints.
//   - Precision     — rounding precision for displayed interval
//     endpoints (default 3; 0 means default, negative is an error).
//   - Duplicates    — Raise (default) or Drop, see Duplicates.
//   - Labels        — LabelIntervals (default), LabelCodes or LabelCustom.
//   - CustomLabels  — bucket labels consumed when Labels is LabelCustom.
//   - Quantile      — quantile estimator seam; nil selects
//     quantile.Values. Only the QCut family reads it.
//
// Start from DefaultOptions() and tweak — the zero Options value has
// Right=false, which is rarely what you want.
//
// QCut and friends are always right-closed with an inclusive lowest
// bound; they ignore Right and IncludeLowest.
type Options struct {
	Right         bool
	IncludeLowest bool
	Precision     int
	Duplicates    Duplicates
	Labels        LabelMode
	CustomLabels  []string
	Quantile      QuantileFunc
}

// DefaultPrecision is the edge-rounding precision used when
// Options.Precision is left at zero.
const DefaultPrecision = 3

// DefaultOptions returns the canonical configuration: right-closed
// buckets, precision 3, Raise duplicates policy, interval categories.
func DefaultOptions() Options {
	return Options{
		Right:      true,
		Precision:  DefaultPrecision,
		Duplicates: Raise,
		Labels:     LabelIntervals,
	}
}

// normalize applies defaults and validates the closed enumerations.
// Policy typos fail fast here, before any computation.
func normalize(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.Precision < 1 {
		return o, ErrBadPrecision
	}
	if o.Duplicates != Raise && o.Duplicates != Drop {
		return o, ErrBadDuplicates
	}
	switch o.Labels {
	case LabelIntervals, LabelCodes, LabelCustom:
	default:
		return o, ErrBadLabelMode
	}

	return o, nil
}

// Result carries the outcome of a numeric binning call. Codes aligns
// positionally with the input: len(Codes) == len(input), and every
// non-sentinel code indexes Categories (or Labels under LabelCustom).
// Breaks always holds the raw (unrounded, post-dedup) breakpoints.
type Result struct {
	Codes      []int
	Categories []interval.Interval // LabelIntervals mode
	Labels     []string            // LabelCustom mode
	Breaks     []float64
}

// Bins returns the number of buckets.
func (r *Result) Bins() int { return len(r.Breaks) - 1 }

// BinCounts returns the population of each bucket. Sentinel codes are
// not counted anywhere.
func (r *Result) BinCounts() []int {
	counts := make([]int, r.Bins())
	for _, c := range r.Codes {
		if c >= 0 && c < len(counts) {
			counts[c]++
		}
	}

	return counts
}

// TimeResult is the timestamp counterpart of Result.
type TimeResult struct {
	Codes      []int
	Categories []interval.TimeInterval
	Labels     []string
	Breaks     []time.Time
}

// Bins returns the number of buckets.
func (r *TimeResult) Bins() int { return len(r.Breaks) - 1 }

// BinCounts returns the population of each bucket, sentinel excluded.
func (r *TimeResult) BinCounts() []int {
	counts := make([]int, r.Bins())
	for _, c := range r.Codes {
		if c >= 0 && c < len(counts) {
			counts[c]++
		}
	}

	return counts
}
