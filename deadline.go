package connwatch

import "time"

// A Deadline is an absolute point in time that may be unset.
// The zero value is the unset deadline.
type Deadline struct {
	t time.Time
}

// DeadlineFrom returns a set deadline for the given point in time.
func DeadlineFrom(t time.Time) Deadline {
	if t.IsZero() {
		panic("connwatch BUG: deadline constructed from the zero time")
	}
	return Deadline{t: t}
}

// IsSet says if the deadline is set.
func (d Deadline) IsSet() bool { return !d.t.IsZero() }

// Time returns the point in time the deadline stands for.
// It must only be called on a set deadline.
func (d Deadline) Time() time.Time {
	if !d.IsSet() {
		panic("connwatch BUG: use of unset deadline")
	}
	return d.t
}

// Equal says if two deadlines stand for the same point in time.
// An unset deadline is only equal to another unset deadline.
func (d Deadline) Equal(other Deadline) bool {
	if !d.IsSet() || !other.IsSet() {
		return d.IsSet() == other.IsSet()
	}
	return d.t.Equal(other.t)
}

// Before says if d is set and lies before other.
// An unset deadline is never before anything.
func (d Deadline) Before(other Deadline) bool {
	if !d.IsSet() || !other.IsSet() {
		return false
	}
	return d.t.Before(other.t)
}

// minDeadline returns the earliest of the set deadlines,
// or the unset deadline if none of them is set.
func minDeadline(deadlines ...Deadline) Deadline {
	var min Deadline
	for _, d := range deadlines {
		if !d.IsSet() {
			continue
		}
		if !min.IsSet() || d.t.Before(min.t) {
			min = d
		}
	}
	return min
}

// maxDeadline returns the latest of the set deadlines,
// or the unset deadline if none of them is set.
func maxDeadline(deadlines ...Deadline) Deadline {
	var max Deadline
	for _, d := range deadlines {
		if !d.IsSet() {
			continue
		}
		if !max.IsSet() || d.t.After(max.t) {
			max = d
		}
	}
	return max
}
