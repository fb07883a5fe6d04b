package idman

import (
	"sort"
	"strings"
)

// IntervalSet is an ordered collection of disjoint, non-adjacent intervals
// representing the currently free id values. Inserting merges with adjacent
// neighbors and removing splits the holding interval, so the set stays
// maximal: no two stored intervals ever overlap or touch.
//
// An IntervalSet is not safe for concurrent use.
type IntervalSet[T IDType] struct {
	intervals []Interval[T] // sorted by (lower, upper)
}

// NewIntervalSet returns an empty set.
func NewIntervalSet[T IDType]() *IntervalSet[T] {
	return &IntervalSet[T]{}
}

// IsEmpty .
func (s *IntervalSet[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// search returns the position of the first stored interval >= iv.
func (s *IntervalSet[T]) search(iv Interval[T]) int {
	return sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].compare(iv) >= 0
	})
}

// InsertInterval adds [lower,upper] to the set. It reports false, leaving
// the set untouched, if any part of the range is already present.
func (s *IntervalSet[T]) InsertInterval(lower, upper T) (bool, error) {
	iv, err := NewInterval(lower, upper)
	if err != nil {
		return false, err
	}
	return s.insert(iv), nil
}

// InsertValue adds a single value to the set. It reports false if the
// value is already present.
func (s *IntervalSet[T]) InsertValue(value T) bool {
	return s.insert(Single(value))
}

func (s *IntervalSet[T]) insert(iv Interval[T]) bool {
	pos := s.search(iv)

	hasNext := pos < len(s.intervals)
	if hasNext && s.intervals[pos].Overlaps(iv) {
		return false
	}

	hasPrev := pos > 0
	if hasPrev && s.intervals[pos-1].Overlaps(iv) {
		return false
	}

	switch {
	case hasNext && hasPrev:
		s.joinOrInsert(pos, iv)
	case hasNext:
		s.mergeNextOrInsert(pos, iv)
	case hasPrev:
		s.mergePrevOrInsert(pos, iv)
	default:
		s.insertAt(pos, iv)
	}
	return true
}

// joinOrInsert places iv between two neighbors. If iv bridges the gap
// exactly, all three ranges collapse into one.
func (s *IntervalSet[T]) joinOrInsert(pos int, iv Interval[T]) {
	next := s.intervals[pos]
	prev := s.intervals[pos-1]

	nextExtends := next.ExtendsLower(iv)
	prevExtends := prev.ExtendsUpper(iv)

	switch {
	case nextExtends && prevExtends:
		s.intervals[pos-1] = Interval[T]{lower: prev.lower, upper: next.upper}
		s.removeAt(pos)
	case nextExtends:
		s.intervals[pos] = Interval[T]{lower: iv.lower, upper: next.upper}
	case prevExtends:
		s.intervals[pos-1] = Interval[T]{lower: prev.lower, upper: iv.upper}
	default:
		s.insertAt(pos, iv)
	}
}

func (s *IntervalSet[T]) mergeNextOrInsert(pos int, iv Interval[T]) {
	next := s.intervals[pos]
	if next.ExtendsLower(iv) {
		s.intervals[pos] = Interval[T]{lower: iv.lower, upper: next.upper}
		return
	}
	s.insertAt(pos, iv)
}

func (s *IntervalSet[T]) mergePrevOrInsert(pos int, iv Interval[T]) {
	prev := s.intervals[pos-1]
	if prev.ExtendsUpper(iv) {
		s.intervals[pos-1] = Interval[T]{lower: prev.lower, upper: iv.upper}
		return
	}
	s.insertAt(pos, iv)
}

// RemoveFirstInterval removes and returns the interval with the smallest
// lower bound. It fails with ErrEmptyPool if the set is empty.
func (s *IntervalSet[T]) RemoveFirstInterval() (Interval[T], error) {
	if len(s.intervals) == 0 {
		return Interval[T]{}, ErrEmptyPool
	}
	first := s.intervals[0]
	s.removeAt(0)
	return first, nil
}

// RemoveFirstValue removes just the lowest free value, keeping the rest of
// its interval in the set. It fails with ErrEmptyPool if the set is empty.
func (s *IntervalSet[T]) RemoveFirstValue() (T, error) {
	first, err := s.RemoveFirstInterval()
	if err != nil {
		var zero T
		return zero, err
	}
	if first.lower != first.upper {
		// remainder stays ahead of every other interval
		s.insertAt(0, Interval[T]{lower: first.lower + 1, upper: first.upper})
	}
	return first.lower, nil
}

// RemoveValue removes a single value, splitting the interval holding it.
// It reports false if no interval contains the value.
func (s *IntervalSet[T]) RemoveValue(value T) bool {
	pos, ok := s.find(Single(value))
	if !ok {
		return false
	}
	iv := s.intervals[pos]
	s.removeAt(pos)
	if iv.lower < value {
		s.insertAt(pos, Interval[T]{lower: iv.lower, upper: value - 1})
		pos++
	}
	if value < iv.upper {
		s.insertAt(pos, Interval[T]{lower: value + 1, upper: iv.upper})
	}
	return true
}

// RemoveInterval removes every value of [lower,upper] from the set. Parts
// of the range already absent are skipped, so repeating the same removal
// is a no-op. Stored intervals reaching beyond either end keep their
// remainder; a remainder that would run past the type's bounds is simply
// not emitted.
func (s *IntervalSet[T]) RemoveInterval(lower, upper T) error {
	span, err := NewInterval(lower, upper)
	if err != nil {
		return err
	}

	// a split emits two remainders for one consumed interval, so build the
	// result aside instead of rewriting in place
	out := make([]Interval[T], 0, len(s.intervals)+1)
	for _, iv := range s.intervals {
		if !iv.Overlaps(span) {
			out = append(out, iv)
			continue
		}
		// iv.lower < lower implies lower > MIN, iv.upper > upper implies
		// upper < MAX, so the remainder arithmetic cannot wrap.
		if iv.lower < lower {
			out = append(out, Interval[T]{lower: iv.lower, upper: lower - 1})
		}
		if iv.upper > upper {
			out = append(out, Interval[T]{lower: upper + 1, upper: iv.upper})
		}
	}
	s.intervals = out
	return nil
}

// find locates the stored interval overlapping iv by probing the neighbors
// on either side of its sorted position.
func (s *IntervalSet[T]) find(iv Interval[T]) (int, bool) {
	pos := s.search(iv)
	if pos > 0 && s.intervals[pos-1].Overlaps(iv) {
		return pos - 1, true
	}
	if pos < len(s.intervals) && s.intervals[pos].Overlaps(iv) {
		return pos, true
	}
	return 0, false
}

func (s *IntervalSet[T]) insertAt(pos int, iv Interval[T]) {
	s.intervals = append(s.intervals, Interval[T]{})
	copy(s.intervals[pos+1:], s.intervals[pos:])
	s.intervals[pos] = iv
}

func (s *IntervalSet[T]) removeAt(pos int) {
	s.intervals = append(s.intervals[:pos], s.intervals[pos+1:]...)
}

// String renders the free intervals in ascending order, comma separated:
// "[lo,hi], [v], ...". An empty set renders as the empty string.
func (s *IntervalSet[T]) String() string {
	var b strings.Builder
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	return b.String()
}
