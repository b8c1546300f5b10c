// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

// Bounded is a reject-on-full wrapper around a [View].
//
// The core view evicts its front when pushed while full. Bounded checks
// capacity before each push and reports [ErrCapacityExceeded] instead,
// leaving the view untouched. Pops on an empty ring report [ErrWouldBlock].
//
// Like View, Bounded borrows its storage and is not safe for concurrent
// use.
type Bounded[T any] struct {
	view View[T]
}

// NewBounded creates an empty reject-on-full ring over storage.
// Panics if len(storage) is not a power of 2.
func NewBounded[T any](storage []T) *Bounded[T] {
	return &Bounded[T]{view: New(storage)}
}

// TryPushBack assigns elem after the back and returns a pointer to it.
// Returns (nil, ErrCapacityExceeded) if the ring is full.
func (b *Bounded[T]) TryPushBack(elem T) (*T, error) {
	if b.view.Full() {
		return nil, ErrCapacityExceeded
	}
	return b.view.PushBack(elem), nil
}

// TryPopFront removes and returns the front element. Ownership of the
// element passes to the caller, so the release hook is not called for it.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (b *Bounded[T]) TryPopFront() (T, error) {
	if b.view.Empty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return b.view.take(), nil
}

// Enqueue copies *elem into the ring.
// Returns ErrCapacityExceeded (an ErrWouldBlock) if the ring is full.
func (b *Bounded[T]) Enqueue(elem *T) error {
	_, err := b.TryPushBack(*elem)
	return err
}

// Dequeue removes and returns the front element.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (b *Bounded[T]) Dequeue() (T, error) {
	return b.TryPopFront()
}

// View returns the wrapped view for reads and in-place updates.
// Pushing through the returned view bypasses the capacity check.
func (b *Bounded[T]) View() *View[T] {
	return &b.view
}

// Len returns the number of live elements.
func (b *Bounded[T]) Len() int {
	return b.view.Len()
}

// Cap returns the ring capacity.
func (b *Bounded[T]) Cap() int {
	return b.view.Cap()
}
