package interval

import (
	"errors"
	"strconv"
)

// Sentinel errors for interval construction.
var (
	// ErrInverted indicates left > right.
	ErrInverted = errors.New("interval: left endpoint must not exceed right endpoint")
	// ErrNaNEndpoint indicates a NaN endpoint; use ±Inf for unbounded sides.
	ErrNaNEndpoint = errors.New("interval: endpoints must not be NaN")
	// ErrBadSide indicates an unrecognized Side value.
	ErrBadSide = errors.New("interval: closed side must be Right or Left")
	// ErrBreakCount indicates fewer than two breakpoints were supplied.
	ErrBreakCount = errors.New("interval: at least two breakpoints required")
	// ErrNotAscending indicates breakpoints that decrease somewhere.
	ErrNotAscending = errors.New("interval: breakpoints must be non-decreasing")
)

// Side selects which endpoint of an interval is inclusive.
type Side int

const (
	// Right closes the upper endpoint: (left, right].
	Right Side = iota
	// Left closes the lower endpoint: [left, right).
	Left
)

// String returns "right" or "left", or "side(n)" for unknown values.
func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "side(" + strconv.Itoa(int(s)) + ")"
	}
}

// valid reports whether s is one of the declared Side constants.
func (s Side) valid() bool { return s == Right || s == Left }

// Interval is an immutable half-open numeric range.
// Invariant: Left <= Right. Endpoints may be ±Inf.
type Interval struct {
	Left   float64
	Right  float64
	Closed Side
}

// New validates endpoints and builds an Interval.
//
// Errors:
//   - ErrNaNEndpoint — either endpoint is NaN.
//   - ErrInverted    — left > right.
//   - ErrBadSide     — closed is not Right or Left.
func New(left, right float64, closed Side) (Interval, error) {
	if left != left || right != right { // x != x only for NaN
		return Interval{}, ErrNaNEndpoint
	}
	if left > right {
		return Interval{}, ErrInverted
	}
	if !closed.valid() {
		return Interval{}, ErrBadSide
	}

	return Interval{Left: left, Right: right, Closed: closed}, nil
}

// Contains reports whether v falls inside the interval under the
// closed-side semantics. NaN is never contained.
func (iv Interval) Contains(v float64) bool {
	if iv.Closed == Left {
		return iv.Left <= v && v < iv.Right
	}

	return iv.Left < v && v <= iv.Right
}

// Equal reports endpoint and closed-side equality.
func (iv Interval) Equal(o Interval) bool {
	return iv.Left == o.Left && iv.Right == o.Right && iv.Closed == o.Closed
}

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 { return iv.Left + (iv.Right-iv.Left)/2 }

// Length returns the width of the interval.
func (iv Interval) Length() float64 { return iv.Right - iv.Left }

// String renders the interval with bracket notation, e.g. "(0.19, 3.367]"
// for a right-closed interval or "[0.2, 2.575)" for a left-closed one.
func (iv Interval) String() string {
	l := strconv.FormatFloat(iv.Left, 'g', -1, 64)
	r := strconv.FormatFloat(iv.Right, 'g', -1, 64)
	if iv.Closed == Left {
		return "[" + l + ", " + r + ")"
	}

	return "(" + l + ", " + r + "]"
}

// FromBreaks converts N+1 ordered breakpoints into N adjacent intervals
// sharing the given closed side.
//
// Errors:
//   - ErrBreakCount   — fewer than two breakpoints.
//   - ErrNotAscending — a breakpoint decreases.
//   - ErrNaNEndpoint / ErrBadSide — propagated from New.
func FromBreaks(breaks []float64, closed Side) ([]Interval, error) {
	if len(breaks) < 2 {
		return nil, ErrBreakCount
	}
	ivs := make([]Interval, 0, len(breaks)-1)
	for i := 1; i < len(breaks); i++ {
		if breaks[i] < breaks[i-1] {
			return nil, ErrNotAscending
		}
		iv, err := New(breaks[i-1], breaks[i], closed)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}

	return ivs, nil
}
