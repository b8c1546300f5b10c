// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringspan provides a fixed-capacity ring view over borrowed storage.
//
// A [View] imposes bounded FIFO semantics with wrap-around indexing on a
// slice the caller owns. The view never allocates, grows or frees the
// storage; it records a mask, a logical start and a length, and every
// access maps a logical index to a slot with a single AND:
//
//	slot = (first + i) & (cap - 1)
//
// This is why the capacity must be a power of 2.
//
// # Quick Start
//
//	var storage [256]Sample
//	v := ringspan.New(storage[:])
//
//	v.PushBack(s)           // append; evicts the front when full
//	first := v.Front()      // *Sample, oldest
//	last := v.Back()        // *Sample, newest
//	third := v.At(2)        // *Sample, unchecked
//	v.PopFront()            // no-op when empty
//
// Storage can come from an array, a slice, any container exposing a data
// pointer and a length ([Contiguous]), or a raw pointer plus count:
//
//	v := ringspan.New(buf)                      // []T
//	v := ringspan.NewFromContainer[T](c)        // c.Data(), c.Len()
//	v := ringspan.NewFromPointer(&buf[0], 64)   // *T, n
//
// # Overwrite Ring
//
// A push selects the slot after the back whether or not the view is full.
// While the view has room the window grows; once full, the same push
// overwrites the front slot and advances the logical start, so Len stays
// at Cap and the oldest element is silently evicted:
//
//	var storage [4]int
//	v := ringspan.New(storage[:])
//	for i := 1; i <= 5; i++ {
//	    v.PushBack(i)
//	}
//	// v holds 2 3 4 5
//
// Pushes never fail. Callers that must not lose elements use [Bounded],
// which checks capacity first and returns [ErrCapacityExceeded].
//
// # Element Lifecycle
//
// Pushes assign into storage; a push into a full view reuses the evicted
// slot rather than clearing and rebuilding it. PopFront and Clear only move
// the window, leaving slot contents in place until a later push reassigns
// them.
//
// Elements that own resources can be released with a hook, called exactly
// once for every element that leaves the window by eviction, PopFront or
// Clear:
//
//	v := ringspan.Over(storage[:]).OnRelease(func(c **Conn) {
//	    (*c).Close()
//	}).Build()
//
// At any point, pushes minus releases equals Len. Elements taken with
// [Bounded.TryPopFront] or Dequeue are handed to the caller and are not
// released by the ring.
//
// # Unchecked and Checked Access
//
// [View.At], [View.Front] and [View.Back] do not check the index; reading
// past Len returns a slot that holds no live element. [View.Get] checks
// and returns a *[RangeError].
//
// # Capacity
//
// Every constructor panics if the capacity is not a power of 2. For
// storage sized by a constant, the check can be moved to compile time:
//
//	const N = 256
//	var _ [0]struct{} = [N & (N - 1)]struct{}{}
//
// [RoundToPow2] sizes dynamically allocated storage.
//
// # Thread Safety
//
// View and Bounded are not safe for concurrent use, and concurrent
// mutation of the storage through another alias is a data race. [Shared]
// wraps a view with a spin lock for callers that need to share a ring
// between goroutines:
//
//	s := ringspan.NewShared(storage[:])
//	go func() { s.PushBack(ev) }()
//	ev, err := s.Dequeue()
//	if ringspan.IsWouldBlock(err) {
//	    // Ring is empty
//	}
//
// # Error Handling
//
// The view reports nothing at runtime: pushes evict, pops on empty are
// no-ops. The wrappers return [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox], as a control flow signal:
//
//	ringspan.IsWouldBlock(err)  // true if ring full/empty
//	ringspan.IsSemantic(err)    // true if control flow signal
//	ringspan.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the lock word of [Shared], and
// [code.hybscloud.com/spin] for CPU pause instructions while it spins.
package ringspan
