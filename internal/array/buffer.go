package array

import "sync/atomic"

// buffer is the contiguous block of elements backing an array.
//
// A buffer is either owned (allocated by this package, freed when the last
// reference is released) or borrowed (wrapped around caller memory; the
// caller's allocation must outlive every view over it). Borrowed buffers
// carry no reference count: a view is never the reference that determines
// the memory's lifetime.
type buffer[T DType] struct {
	data []T
	refs *atomic.Int32 // nil for borrowed buffers
}

// newBuffer allocates an owned, zeroed buffer with refcount 1.
func newBuffer[T DType](n int) *buffer[T] {
	refs := new(atomic.Int32)
	refs.Store(1)
	return &buffer[T]{
		data: make([]T, n),
		refs: refs,
	}
}

// borrowBuffer wraps caller-supplied memory without taking ownership.
func borrowBuffer[T DType](data []T) *buffer[T] {
	return &buffer[T]{data: data}
}

// owned reports whether this buffer's lifetime is managed by refcounting.
func (b *buffer[T]) owned() bool {
	return b.refs != nil
}

// addRef increments the reference count. No-op for borrowed buffers.
func (b *buffer[T]) addRef() {
	if b.refs != nil {
		b.refs.Add(1)
	}
}

// release decrements the reference count and drops the backing slice when it
// reaches zero. No-op for borrowed buffers.
func (b *buffer[T]) release() {
	if b.refs != nil && b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique reports whether this buffer has exactly one owning reference.
// Borrowed buffers are never unique: the caller's allocation aliases them.
func (b *buffer[T]) isUnique() bool {
	return b.refs != nil && b.refs.Load() == 1
}
