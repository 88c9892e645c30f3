package seqbuf

import (
	"math"
	"unsafe"
)

// Limits bound how large a buffer may become.
type Limits struct {
	// MaxCount is the largest representable element count.
	MaxCount int
	// MaxBytes is the largest addressable storage size in bytes.
	MaxBytes int
}

// DefaultLimits returns the platform limits: both bounds are math.MaxInt.
func DefaultLimits() Limits {
	return Limits{
		MaxCount: math.MaxInt,
		MaxBytes: math.MaxInt,
	}
}

// normalize replaces non-positive bounds with the platform defaults.
func (l Limits) normalize() Limits {
	def := DefaultLimits()
	if l.MaxCount <= 0 {
		l.MaxCount = def.MaxCount
	}

	if l.MaxBytes <= 0 {
		l.MaxBytes = def.MaxBytes
	}

	return l
}

// MaxElements returns how many elements of elemSize fit into MaxBytes.
// Zero-size elements never hit the byte bound.
func (l Limits) MaxElements(elemSize uintptr) int {
	if elemSize == 0 {
		return l.MaxCount
	}

	return int(uintptr(l.MaxBytes) / elemSize)
}

// Check validates an initial capacity for elements of elemSize bytes.
func (l Limits) Check(op string, capacity int, elemSize uintptr) error {
	if capacity <= 0 {
		return &Error{Op: op, Kind: KindInvalidCapacity, Index: capacity}
	}

	if capacity > l.MaxCount {
		return &Error{Op: op, Kind: KindInvalidCapacity, Index: capacity, Bound: l.MaxCount}
	}

	if maxElems := l.MaxElements(elemSize); capacity > maxElems {
		return &Error{Op: op, Kind: KindInvalidCapacity, Index: capacity, Bound: maxElems}
	}

	return nil
}

// Grow returns the doubled capacity, or an error if either overflow guard
// rejects it. The count guard runs before the byte guard.
func (l Limits) Grow(op string, capacity int, elemSize uintptr) (int, error) {
	half := l.MaxCount / 2
	if capacity > half {
		return 0, &Error{Op: op, Kind: KindGrowthOverflow, Index: capacity, Bound: half}
	}

	next := capacity * 2

	if maxElems := l.MaxElements(elemSize); next > maxElems {
		return 0, &Error{Op: op, Kind: KindByteOverflow, Index: next, Bound: maxElems}
	}

	return next, nil
}

// ElemSize returns the storage size of one T.
func ElemSize[T any]() uintptr {
	var zero T

	return unsafe.Sizeof(zero)
}
