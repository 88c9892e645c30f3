package seqbuf

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -trimprefix=Kind -output=errorkind_string.go

// ErrorKind classifies a failed buffer operation.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is not a valid kind

	KindInvalidCapacity // zero, negative or oversized initial capacity
	KindOutOfBounds     // index outside the live region (covers the empty buffer)
	KindGrowthOverflow  // capacity cannot be doubled without exceeding MaxCount
	KindByteOverflow    // doubled capacity would exceed MaxBytes
	KindReleased        // operation on a buffer after Free
)

// Sentinel errors matched by errors.Is against any *Error of the same kind.
// A KindByteOverflow error also matches ErrGrowthOverflow.
var (
	ErrInvalidCapacity = errors.New("seqbuf: invalid capacity")
	ErrOutOfBounds     = errors.New("seqbuf: index out of bounds")
	ErrGrowthOverflow  = errors.New("seqbuf: growth overflow")
	ErrByteOverflow    = errors.New("seqbuf: byte size overflow")
	ErrReleased        = errors.New("seqbuf: buffer released")
)

// Error describes a failed operation: which operation, what went wrong and
// the offending value against the bound it violated.
type Error struct {
	// Op names the operation, e.g. "Buffer.Insert" or "IntArray.Get".
	Op string
	// Kind is the violated constraint.
	Kind ErrorKind
	// Index is the offending index or capacity.
	Index int
	// Bound is the limit Index was checked against.
	Bound int
}

// Error returns the human-readable diagnostic.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidCapacity:
		if e.Index <= 0 {
			return fmt.Sprintf("%s: initial capacity (%d) must be greater than 0", e.Op, e.Index)
		}

		return fmt.Sprintf("%s: initial capacity (%d) cannot be greater than %d", e.Op, e.Index, e.Bound)
	case KindOutOfBounds:
		if e.Bound == 0 {
			return fmt.Sprintf("%s: index (%d) out of bounds, buffer is empty (count 0)", e.Op, e.Index)
		}

		return fmt.Sprintf("%s: index (%d) out of bounds (%d)", e.Op, e.Index, e.Bound)
	case KindGrowthOverflow:
		return fmt.Sprintf("%s: capacity (%d) cannot be doubled without overflow, max allowed is %d entries",
			e.Op, e.Index, e.Bound)
	case KindByteOverflow:
		return fmt.Sprintf("%s: capacity (%d) would overflow the addressable size, max capacity is %d entries",
			e.Op, e.Index, e.Bound)
	case KindReleased:
		return e.Op + ": buffer has been released"
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Is reports byte overflow as a growth overflow as well.
func (e *Error) Is(target error) bool {
	return e.Kind == KindByteOverflow && target == ErrGrowthOverflow
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidCapacity:
		return ErrInvalidCapacity
	case KindOutOfBounds:
		return ErrOutOfBounds
	case KindGrowthOverflow:
		return ErrGrowthOverflow
	case KindByteOverflow:
		return ErrByteOverflow
	case KindReleased:
		return ErrReleased
	default:
		return nil
	}
}

// CheckIndex validates index against the live region [0, count).
func CheckIndex(op string, index, count int) error {
	if index < 0 || index >= count {
		return &Error{Op: op, Kind: KindOutOfBounds, Index: index, Bound: count}
	}

	return nil
}

// CheckPosition validates an insertion position against [0, count].
func CheckPosition(op string, index, count int) error {
	if index < 0 || index > count {
		return &Error{Op: op, Kind: KindOutOfBounds, Index: index, Bound: count}
	}

	return nil
}

// Released returns the error reported by operations on a freed buffer.
func Released(op string) error {
	return &Error{Op: op, Kind: KindReleased}
}
