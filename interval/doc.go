// Package interval provides the immutable Interval and TimeInterval
// value objects used by the binning engine in lvlbin/bins.
//
// An Interval is a contiguous numeric range with an explicit closed
// side: Right means (left, right], Left means [left, right).
// Endpoints may be ±Inf for unbounded ranges. Two intervals are equal
// iff they share both endpoints and the closed side.
//
// ⚙️ Usage:
//
//	iv, err := interval.New(0, 18, interval.Right)
//	iv.Contains(18) // true  — (0, 18] includes its upper bound
//	iv.Contains(0)  // false — lower bound excluded
//	fmt.Println(iv) // (0, 18]
//
// TimeInterval is the timestamp specialization: same closed-side
// semantics over time.Time endpoints.
package interval
