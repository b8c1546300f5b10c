// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Shared serializes access to a [View] for use from multiple goroutines.
//
// View itself makes no thread-safety guarantee. Shared is the external
// synchronization layer: every method holds a test-and-test-and-set spin
// lock for the duration of one O(1) view operation. Critical sections are
// a few instructions long, so spinning is cheaper than parking.
//
// The storage must not be accessed through other aliases while a Shared
// is in use.
type Shared[T any] struct {
	_     pad
	state atomix.Uint64 // 0 unlocked, 1 locked
	_     pad
	view  View[T]
}

// NewShared creates an empty spin-locked ring over storage.
// Panics if len(storage) is not a power of 2.
func NewShared[T any](storage []T) *Shared[T] {
	return &Shared[T]{view: New(storage)}
}

func (s *Shared[T]) lock() {
	sw := spin.Wait{}
	for {
		if s.state.LoadRelaxed() == 0 && s.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

func (s *Shared[T]) unlock() {
	s.state.StoreRelease(0)
}

// PushBack copies elem after the back, evicting the front if the ring is
// full. Reports whether an element was evicted.
func (s *Shared[T]) PushBack(elem T) (evicted bool) {
	s.lock()
	evicted = s.view.Full()
	s.view.PushBack(elem)
	s.unlock()
	return evicted
}

// Enqueue copies *elem into the ring.
// Returns ErrWouldBlock if the ring is full.
func (s *Shared[T]) Enqueue(elem *T) error {
	s.lock()
	if s.view.Full() {
		s.unlock()
		return ErrWouldBlock
	}
	s.view.PushBack(*elem)
	s.unlock()
	return nil
}

// Dequeue removes and returns the front element. Ownership passes to the
// caller; the release hook is not called for it.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (s *Shared[T]) Dequeue() (T, error) {
	s.lock()
	if s.view.Empty() {
		s.unlock()
		var zero T
		return zero, ErrWouldBlock
	}
	elem := s.view.take()
	s.unlock()
	return elem, nil
}

// Do runs fn with exclusive access to the view, for compound operations
// such as draining or in-place updates. fn must not retain the view or
// pointers into storage after it returns, and must not call methods on s.
func (s *Shared[T]) Do(fn func(v *View[T])) {
	s.lock()
	defer s.unlock()
	fn(&s.view)
}

// Len returns the number of live elements at the time of the call.
func (s *Shared[T]) Len() int {
	s.lock()
	n := s.view.Len()
	s.unlock()
	return n
}

// Cap returns the ring capacity.
func (s *Shared[T]) Cap() int {
	return int(s.view.mask + 1)
}

// pad is cache line padding to keep the lock word off neighbouring data.
type pad [64]byte
