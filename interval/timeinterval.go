package interval

import "time"

// TimeInterval is the timestamp specialization of Interval: a half-open
// range over time.Time endpoints with the same closed-side semantics.
// Invariant: Left does not come after Right.
type TimeInterval struct {
	Left   time.Time
	Right  time.Time
	Closed Side
}

// NewTime validates endpoints and builds a TimeInterval.
//
// Errors:
//   - ErrInverted — left comes after right.
//   - ErrBadSide  — closed is not Right or Left.
func NewTime(left, right time.Time, closed Side) (TimeInterval, error) {
	if left.After(right) {
		return TimeInterval{}, ErrInverted
	}
	if !closed.valid() {
		return TimeInterval{}, ErrBadSide
	}

	return TimeInterval{Left: left, Right: right, Closed: closed}, nil
}

// Contains reports whether t falls inside the interval under the
// closed-side semantics.
func (iv TimeInterval) Contains(t time.Time) bool {
	if iv.Closed == Left {
		return !t.Before(iv.Left) && t.Before(iv.Right)
	}

	return iv.Left.Before(t) && !t.After(iv.Right)
}

// Equal reports endpoint and closed-side equality. Endpoints compare
// via time.Time.Equal, so differing locations do not break equality.
func (iv TimeInterval) Equal(o TimeInterval) bool {
	return iv.Left.Equal(o.Left) && iv.Right.Equal(o.Right) && iv.Closed == o.Closed
}

// String renders the interval with bracket notation over RFC 3339
// timestamps, e.g. "(2013-01-01T00:00:00Z, 2013-01-02T00:00:00Z]".
func (iv TimeInterval) String() string {
	l := iv.Left.Format(time.RFC3339Nano)
	r := iv.Right.Format(time.RFC3339Nano)
	if iv.Closed == Left {
		return "[" + l + ", " + r + ")"
	}

	return "(" + l + ", " + r + "]"
}
