package seqbuf

import "slices"

// View is a read-only window onto a buffer's storage as it was when the
// view was taken. It aliases the storage: writes through DataMut show up in
// it, and it goes stale once the buffer grows or is freed.
type View[T any] struct {
	storage []T
	count   int
}

// NewView wraps storage whose first count elements are live.
func NewView[T any](storage []T, count int) View[T] {
	return View[T]{storage: storage, count: count}
}

// Len returns the number of live elements at the time the view was taken.
func (v View[T]) Len() int {
	return v.count
}

// Cap returns the length of the underlying storage.
func (v View[T]) Cap() int {
	return len(v.storage)
}

// At returns the element in slot i. Like slice indexing it panics when i is
// outside [0, Cap()); slots at or beyond Len() are unspecified.
func (v View[T]) At(i int) T {
	return v.storage[i]
}

// Values returns a copy of the live elements.
func (v View[T]) Values() []T {
	return slices.Clone(v.storage[:v.count])
}
