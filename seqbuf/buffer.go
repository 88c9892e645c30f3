package seqbuf

// Operation names used in errors raised by Buffer.
const (
	opNew     = "seqbuf.New"
	opPush    = "Buffer.Push"
	opInsert  = "Buffer.Insert"
	opSet     = "Buffer.Set"
	opRemove  = "Buffer.Remove"
	opGet     = "Buffer.Get"
	opAt      = "Buffer.At"
	opGrow    = "Buffer.grow"
	opData    = "Buffer.Data"
	opDataMut = "Buffer.DataMut"
)

// Buffer is a growable, contiguous, bounds-checked sequence of T.
//
// Elements live at indices [0, Len()); slots in [Len(), Cap()) are
// unspecified. The zero Buffer is not usable; create one with New.
type Buffer[T any] struct {
	storage  []T // len(storage) is the capacity
	count    int
	settings Settings
	released bool
}

// New allocates a buffer with room for exactly initialCapacity elements.
// It returns a nil buffer and a KindInvalidCapacity error if the capacity is
// not positive or its storage would exceed the configured limits.
func New[T any](initialCapacity int, opts ...Option) (*Buffer[T], error) {
	settings := NewSettings(opts...)

	err := settings.Limits.Check(opNew, initialCapacity, ElemSize[T]())
	if err != nil {
		return nil, settings.Report(err)
	}

	return &Buffer[T]{
		storage:  make([]T, initialCapacity),
		settings: settings,
	}, nil
}

// Free releases the backing storage. Calling it again is a no-op; every
// other operation afterwards fails with ErrReleased or returns zero values.
func (b *Buffer[T]) Free() {
	if b.released {
		return
	}

	b.storage = nil
	b.count = 0
	b.released = true
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.count == 0
}

// IsFull reports whether the next insertion has to grow the buffer.
func (b *Buffer[T]) IsFull() bool {
	return !b.released && b.count == len(b.storage)
}

// Data returns a read-only view of the storage. The view is invalidated by
// Push, Insert and Free.
func (b *Buffer[T]) Data() View[T] {
	if b.released {
		_ = b.settings.Report(Released(opData))
	}

	return NewView(b.storage, b.count)
}

// DataMut returns the backing storage itself, len == Cap(). Only the first
// Len() elements are meaningful. The slice is invalidated by Push, Insert
// and Free.
func (b *Buffer[T]) DataMut() []T {
	if b.released {
		_ = b.settings.Report(Released(opDataMut))
	}

	return b.storage
}

// Push appends item, growing the buffer if it is full.
func (b *Buffer[T]) Push(item T) error {
	if b.released {
		return b.settings.Report(Released(opPush))
	}

	if err := b.grow(); err != nil {
		return b.settings.Report(err)
	}

	b.storage[b.count] = item
	b.count++

	return nil
}

// Insert places item at index, shifting [index, Len()) one slot up.
// index == Len() behaves like Push. The index is validated before any
// growth, so a rejected call never reallocates.
func (b *Buffer[T]) Insert(index int, item T) error {
	if b.released {
		return b.settings.Report(Released(opInsert))
	}

	if err := CheckPosition(opInsert, index, b.count); err != nil {
		return b.settings.Report(err)
	}

	if err := b.grow(); err != nil {
		return b.settings.Report(err)
	}

	if index < b.count {
		copy(b.storage[index+1:b.count+1], b.storage[index:b.count])
	}

	b.storage[index] = item
	b.count++

	return nil
}

// Set overwrites the element at index.
func (b *Buffer[T]) Set(index int, item T) error {
	if b.released {
		return b.settings.Report(Released(opSet))
	}

	if err := CheckIndex(opSet, index, b.count); err != nil {
		return b.settings.Report(err)
	}

	b.storage[index] = item

	return nil
}

// Remove deletes the element at index, shifting (index, Len()) one slot down.
func (b *Buffer[T]) Remove(index int) error {
	if b.released {
		return b.settings.Report(Released(opRemove))
	}

	if err := CheckIndex(opRemove, index, b.count); err != nil {
		return b.settings.Report(err)
	}

	last := b.count - 1
	if index < last {
		copy(b.storage[index:last], b.storage[index+1:b.count])
	}

	var zero T
	b.storage[last] = zero
	b.count = last

	return nil
}

// Get copies the element at index into out. On failure out is untouched.
// A nil out only validates the index.
func (b *Buffer[T]) Get(index int, out *T) error {
	if b.released {
		return b.settings.Report(Released(opGet))
	}

	if err := CheckIndex(opGet, index, b.count); err != nil {
		return b.settings.Report(err)
	}

	if out != nil {
		*out = b.storage[index]
	}

	return nil
}

// At returns the element at index.
func (b *Buffer[T]) At(index int) (T, error) {
	var item T
	if b.released {
		return item, b.settings.Report(Released(opAt))
	}

	if err := CheckIndex(opAt, index, b.count); err != nil {
		return item, b.settings.Report(err)
	}

	return b.storage[index], nil
}

// Clear drops all elements. Capacity and storage are kept.
func (b *Buffer[T]) Clear() {
	clear(b.storage[:b.count])
	b.count = 0
}

// grow doubles the storage when the buffer is full. On error the buffer is
// unchanged.
func (b *Buffer[T]) grow() error {
	if b.count < len(b.storage) {
		return nil
	}

	next, err := b.settings.Limits.Grow(opGrow, len(b.storage), ElemSize[T]())
	if err != nil {
		return err
	}

	storage := make([]T, next)
	copy(storage, b.storage[:b.count])
	b.storage = storage

	return nil
}
