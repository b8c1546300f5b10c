// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

import "math/bits"

// Options configures view creation.
type Options[T any] struct {
	// Borrowed storage (length is a power of 2)
	storage []T

	// Called once for every element leaving the live window
	release func(*T)
}

// Builder creates views with fluent configuration.
//
// Example:
//
//	var storage [1024]*Conn
//
//	// Overwrite ring that closes evicted and popped connections
//	v := ringspan.Over(storage[:]).OnRelease(func(c **Conn) { (*c).Close() }).Build()
//
//	// Reject-on-full ring
//	b := ringspan.Over(storage[:]).BuildBounded()
//
//	// Ring shared between goroutines
//	s := ringspan.Over(storage[:]).BuildShared()
type Builder[T any] struct {
	opts Options[T]
}

// Over creates a view builder over storage.
//
// The builder and every view it builds borrow storage; none of them copy
// or reallocate it.
//
// Panics if len(storage) is not a power of 2.
func Over[T any](storage []T) *Builder[T] {
	if !IsPow2(len(storage)) {
		panic("ringspan: capacity must be a power of 2")
	}
	return &Builder[T]{opts: Options[T]{storage: storage}}
}

// OnRelease sets a hook called exactly once for every element that leaves
// the live window: the evicted front on a push into a full view, the front
// on PopFront, and each live element on Clear.
//
// The hook receives a pointer into storage. On eviction it runs before the
// slot is reassigned. The slot contents are left in place afterwards.
// The hook must not call back into the view.
func (b *Builder[T]) OnRelease(fn func(*T)) *Builder[T] {
	b.opts.release = fn
	return b
}

// Build creates an overwrite-on-full view.
func (b *Builder[T]) Build() View[T] {
	v := New(b.opts.storage)
	v.release = b.opts.release
	return v
}

// BuildBounded creates a reject-on-full wrapper around a new view.
func (b *Builder[T]) BuildBounded() *Bounded[T] {
	return &Bounded[T]{view: b.Build()}
}

// BuildShared creates a spin-locked wrapper around a new view.
func (b *Builder[T]) BuildShared() *Shared[T] {
	return &Shared[T]{view: b.Build()}
}

// IsPow2 reports whether n is a positive power of 2.
//
// For storage sized by a constant, the same check can run at compile time:
//
//	const N = 256
//	var _ [0]struct{} = [N & (N - 1)]struct{}{} // fails to compile unless N is a power of 2
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// RoundToPow2 rounds n up to the next power of 2, for owners sizing
// storage before handing it to a view:
//
//	storage := make([]Event, ringspan.RoundToPow2(want))
//
// Returns 1 for n < 2.
func RoundToPow2(n int) int {
	if n < 2 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
