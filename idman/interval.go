package idman

import "fmt"

// Interval is a closed, inclusive range of id values. A single value is
// represented as lower == upper.
type Interval[T IDType] struct {
	lower T
	upper T
}

// NewInterval fails with ErrMalformedRange if upper < lower.
func NewInterval[T IDType](lower, upper T) (Interval[T], error) {
	if upper < lower {
		return Interval[T]{}, ErrMalformedRange
	}
	return Interval[T]{lower: lower, upper: upper}, nil
}

// Single returns the interval holding exactly one value.
func Single[T IDType](value T) Interval[T] {
	return Interval[T]{lower: value, upper: value}
}

// Lower .
func (iv Interval[T]) Lower() T { return iv.lower }

// Upper .
func (iv Interval[T]) Upper() T { return iv.upper }

// ContainsValue reports whether value lies within the interval.
func (iv Interval[T]) ContainsValue(value T) bool {
	return value >= iv.lower && value <= iv.upper
}

// Overlaps reports whether the two closed ranges intersect.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return other.upper >= iv.lower && other.lower <= iv.upper
}

// ExtendsLower reports whether candidate sits exactly adjacent below the
// interval, so merging the two yields one contiguous range. A candidate
// ending at the type's maximum has no successor and never extends.
func (iv Interval[T]) ExtendsLower(candidate Interval[T]) bool {
	if candidate.upper == maxValue[T]() {
		return false
	}
	return candidate.upper+1 == iv.lower
}

// ExtendsUpper reports whether candidate sits exactly adjacent above the
// interval. A candidate starting at the type's minimum has no predecessor
// and never extends.
func (iv Interval[T]) ExtendsUpper(candidate Interval[T]) bool {
	if candidate.lower == minValue[T]() {
		return false
	}
	return candidate.lower-1 == iv.upper
}

// compare orders intervals lexicographically by (lower, upper).
func (iv Interval[T]) compare(other Interval[T]) int {
	switch {
	case iv.lower < other.lower:
		return -1
	case iv.lower > other.lower:
		return 1
	case iv.upper < other.upper:
		return -1
	case iv.upper > other.upper:
		return 1
	}
	return 0
}

func (iv Interval[T]) String() string {
	if iv.lower == iv.upper {
		return fmt.Sprintf("[%d]", iv.lower)
	}
	return fmt.Sprintf("[%d,%d]", iv.lower, iv.upper)
}
