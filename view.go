// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

import (
	"iter"
	"unsafe"
)

// View is a fixed-capacity ring over storage it does not own.
//
// The view borrows a slice of power-of-two length and imposes FIFO
// semantics with wrap-around indexing on it. It never allocates, grows or
// frees the storage. The owner must keep the storage valid, unmoved and at
// least as long as the view's capacity for as long as the view is used.
//
// Pushing into a full view evicts the front element: View is an overwrite
// ring, not a bounded queue. Use [Bounded] for reject-on-full semantics.
//
// View is not safe for concurrent use. Use [Shared] when a ring must be
// accessed from multiple goroutines.
//
// Copies of a View share storage but not the window; pass a *View to
// share one ring.
//
// Memory: one slice header and four words; the view itself holds no
// elements.
type View[T any] struct {
	buffer  []T
	mask    uint64
	first   uint64 // Logical start; masked on every access, never wrapped
	size    uint64
	release func(*T)
}

// Contiguous is implemented by containers that expose their elements as
// one contiguous block.
type Contiguous[T any] interface {
	// Data returns a pointer to the first element.
	Data() *T
	// Len returns the number of elements in the block.
	Len() int
}

// New creates an empty view over storage.
// Arrays are viewed through a slice expression: New(arr[:]).
// Panics if len(storage) is not a power of 2.
func New[T any](storage []T) View[T] {
	if !IsPow2(len(storage)) {
		panic("ringspan: capacity must be a power of 2")
	}
	return View[T]{
		buffer: storage,
		mask:   uint64(len(storage) - 1),
	}
}

// NewFromContainer creates an empty view over the block exposed by c.
// Panics if c.Len() is not a power of 2.
func NewFromContainer[T any](c Contiguous[T]) View[T] {
	return NewFromPointer(c.Data(), c.Len())
}

// NewFromPointer creates an empty view over n elements starting at p.
// Panics if n is not a power of 2 or p is nil.
func NewFromPointer[T any](p *T, n int) View[T] {
	if !IsPow2(n) {
		panic("ringspan: capacity must be a power of 2")
	}
	if p == nil {
		panic("ringspan: nil storage")
	}
	return New(unsafe.Slice(p, n))
}

// slot returns the storage slot of logical index i.
// The mask keeps the offset inside the buffer, so the bounds check is
// skipped.
func (v *View[T]) slot(i uint64) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(v.buffer)), uintptr((v.first+i)&v.mask)*unsafe.Sizeof(zero)))
}

// At returns a pointer to logical element i.
//
// The index is not checked. For i >= Len() the result points at a slot
// that holds no live element. Use [View.Get] for a checked read.
func (v *View[T]) At(i int) *T {
	return v.slot(uint64(i))
}

// Get returns a copy of logical element i.
// Returns a *[RangeError] if i is outside [0, Len()).
func (v *View[T]) Get(i int) (T, error) {
	if i < 0 || uint64(i) >= v.size {
		var zero T
		return zero, &RangeError{Index: i, Len: int(v.size)}
	}
	return *v.slot(uint64(i)), nil
}

// Front returns a pointer to the oldest element.
// The view is expected to be non-empty.
func (v *View[T]) Front() *T {
	return v.slot(0)
}

// Back returns a pointer to the newest element.
// The view is expected to be non-empty.
func (v *View[T]) Back() *T {
	return v.slot(v.size - 1)
}

// Len returns the number of live elements.
func (v *View[T]) Len() int {
	return int(v.size)
}

// Cap returns the view capacity.
func (v *View[T]) Cap() int {
	return int(v.mask + 1)
}

// Empty reports whether the view holds no elements.
func (v *View[T]) Empty() bool {
	return v.size == 0
}

// Full reports whether the next push will evict the front element.
func (v *View[T]) Full() bool {
	return v.size > v.mask
}

// PushBack assigns elem to the slot after the back and returns a pointer
// to the new back element. If the view is full the front element is
// evicted and Len stays at Cap.
func (v *View[T]) PushBack(elem T) *T {
	p := v.next()
	*p = elem
	return p
}

// PushBackZero assigns the zero value of T to the slot after the back and
// returns a pointer to it, for in-place initialization by the caller.
// Eviction follows [View.PushBack].
func (v *View[T]) PushBackZero() *T {
	p := v.next()
	var zero T
	*p = zero
	return p
}

// next selects the slot for a push and advances the window.
// The slot is the same whether or not the view is full; only the window
// bookkeeping differs.
func (v *View[T]) next() *T {
	p := v.slot(v.size)
	if v.size&v.mask == v.size {
		v.size++
		return p
	}
	// Full: p is the front slot.
	if v.release != nil {
		v.release(p)
	}
	v.first++
	return p
}

// PopFront removes the front element. No-op if the view is empty.
// The vacated slot keeps its contents until a later push reassigns it.
func (v *View[T]) PopFront() {
	if v.size == 0 {
		return
	}
	if v.release != nil {
		v.release(v.slot(0))
	}
	v.first++
	v.size--
}

// take removes and returns the front element without calling the release
// hook; ownership passes to the caller. The view must be non-empty.
func (v *View[T]) take() T {
	elem := *v.slot(0)
	v.first++
	v.size--
	return elem
}

// Clear removes all elements. The logical start is retained and storage
// contents are not modified.
func (v *View[T]) Clear() {
	if v.release != nil {
		for i := range v.size {
			v.release(v.slot(i))
		}
	}
	v.size = 0
}

// All returns an iterator over logical indices and element pointers,
// front to back. The view must not be mutated during iteration.
func (v *View[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.size {
			if !yield(int(i), v.slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the elements, front to back.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.size {
			if !yield(*v.slot(i)) {
				return
			}
		}
	}
}

// CopyTo copies live elements front to back into dst and returns the
// number copied, min(len(dst), Len()). At most two copies are made, one
// per contiguous run of storage.
func (v *View[T]) CopyTo(dst []T) int {
	n := min(uint64(len(dst)), v.size)
	if n == 0 {
		return 0
	}
	start := v.first & v.mask
	k := copy(dst[:n], v.buffer[start:])
	if uint64(k) < n {
		k += copy(dst[k:n], v.buffer[:n-uint64(k)])
	}
	return k
}
