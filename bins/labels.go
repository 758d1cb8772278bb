// Package bins: label resolution — interval categories, raw codes, or
// caller-supplied labels.
package bins

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlbin/interval"
)

// intervalCategories builds the displayed interval list for the final
// edge set. Endpoints are rounded at the inferred precision; when the
// buckets are right-closed and the lowest bound is inclusive, the first
// left endpoint is lowered by 10^-precision so the rendered interval
// visibly contains the minimum.
func intervalCategories(edges []float64, right, includeLowest bool, precision int) ([]interval.Interval, error) {
	p := inferPrecision(precision, edges)
	breaks := make([]float64, len(edges))
	for i, e := range edges {
		breaks[i] = roundFrac(e, p)
	}
	side := interval.Right
	if !right {
		side = interval.Left
	}
	cats, err := interval.FromBreaks(breaks, side)
	if err != nil {
		return nil, err
	}
	if right && includeLowest {
		cats[0].Left -= math.Pow(10, -float64(p))
	}

	return cats, nil
}

// timeCategories is the timestamp counterpart: no rounding (edges are
// exact nanoseconds), and the inclusive-lowest adjustment is 1ns.
func timeCategories(edges []int64, right, includeLowest bool) ([]interval.TimeInterval, error) {
	side := interval.Right
	if !right {
		side = interval.Left
	}
	cats := make([]interval.TimeInterval, 0, len(edges)-1)
	for i := 1; i < len(edges); i++ {
		iv, err := interval.NewTime(nanoTime(edges[i-1]), nanoTime(edges[i]), side)
		if err != nil {
			return nil, err
		}
		cats = append(cats, iv)
	}
	if right && includeLowest {
		cats[0].Left = cats[0].Left.Add(-time.Nanosecond)
	}

	return cats, nil
}

// customLabels validates and copies caller-supplied bucket labels.
// The count check runs after deduplication, against the final bucket
// count.
func customLabels(labels []string, bucketCount int) ([]string, error) {
	if len(labels) != bucketCount {
		return nil, ErrLabelCount
	}

	return append([]string(nil), labels...), nil
}
