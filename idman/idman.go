// Package idman hands out unique ids drawn from a bounded range of an
// unsigned integer type, tracks which ids are in use, and returns released
// ids to the free pool. It is meant for short, dense, reusable handles:
// connection ids, slot indices, session numbers.
package idman

import "errors"

var ErrMalformedRange = errors.New("upper must be >= lower")
var ErrPoolExhausted = errors.New("no ids available")
var ErrNotAllocated = errors.New("id is not currently allocated")
var ErrOutOfRange = errors.New("id out of range")
var ErrEmptyPool = errors.New("empty interval set")

// IDType constrains the id representation: a totally ordered unsigned
// integer with a fixed minimum and maximum. Successor and predecessor
// arithmetic inside the package never wraps; cursor wraparound is handled
// explicitly by Manager.
type IDType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func minValue[T IDType]() T {
	var v T
	return v
}

func maxValue[T IDType]() T {
	var v T
	return ^v
}
