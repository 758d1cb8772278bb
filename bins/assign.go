// Package bins: bucket assignment via ordered-breakpoint search.
package bins

import (
	"math"
	"sort"
)

// assignCodes maps each value to its bucket code over ascending edges.
//
// Right-closed buckets use the leftmost-insertion search (smallest i
// with edges[i] >= v), left-closed buckets the rightmost one (smallest
// i with edges[i] > v); the bucket code is the insertion index minus
// one, so the general exclusivity rule stays uniform across buckets.
// includeLowest forces values equal to edges[0] into the first bucket.
//
// Missing values (NaN) skip the search; values below the first edge,
// above the last, or on an excluded boundary get CodeMissing — by
// policy out-of-range input is not an error.
func assignCodes(values, edges []float64, right, includeLowest bool) []int {
	codes := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			codes[i] = CodeMissing
			continue
		}
		var id int
		if right {
			id = sort.SearchFloat64s(edges, v)
		} else {
			id = searchAbove(edges, v)
		}
		if includeLowest && v == edges[0] {
			id = 1
		}
		if id == 0 || id == len(edges) {
			codes[i] = CodeMissing
			continue
		}
		codes[i] = id - 1
	}

	return codes
}

// searchAbove returns the smallest index i with edges[i] > v.
func searchAbove(edges []float64, v float64) int {
	return sort.Search(len(edges), func(i int) bool { return edges[i] > v })
}

// assignNanoCodes is assignCodes over int64 nanosecond values; miss
// flags mark missing inputs (the zero time.Time upstream).
func assignNanoCodes(nanos []int64, miss []bool, edges []int64, right, includeLowest bool) []int {
	codes := make([]int, len(nanos))
	for i, v := range nanos {
		if miss[i] {
			codes[i] = CodeMissing
			continue
		}
		var id int
		if right {
			id = sort.Search(len(edges), func(j int) bool { return edges[j] >= v })
		} else {
			id = sort.Search(len(edges), func(j int) bool { return edges[j] > v })
		}
		if includeLowest && v == edges[0] {
			id = 1
		}
		if id == 0 || id == len(edges) {
			codes[i] = CodeMissing
			continue
		}
		codes[i] = id - 1
	}

	return codes
}
