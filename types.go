// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

// Queue is the combined producer-consumer interface for the
// reject-on-full ring wrappers.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both return
// ErrWouldBlock when they cannot proceed (ring full or empty). It matches
// the contract of code.hybscloud.com/lfq queues, so a ring over borrowed
// storage can stand in where an lfq queue is expected.
//
// Example:
//
//	var storage [64]Event
//	var q ringspan.Queue[Event] = ringspan.NewBounded(storage[:])
//
//	if err := q.Enqueue(&ev); ringspan.IsWouldBlock(err) {
//	    // Handle full ring
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// ring stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue copies the element into the ring (non-blocking).
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The vacated slot keeps its contents
// until a later push reassigns it.
type Consumer[T any] interface {
	// Dequeue removes and returns the front element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	Dequeue() (T, error)
}
