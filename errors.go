// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryPopFront and Dequeue: the ring is empty
// For Enqueue on reject-on-full wrappers: the ring is full
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later or drop the element rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrCapacityExceeded is returned by [Bounded.TryPushBack] when the ring
// is full. It wraps [ErrWouldBlock], so [IsWouldBlock] reports true:
//
//	if _, err := b.TryPushBack(ev); errors.Is(err, ringspan.ErrCapacityExceeded) {
//	    dropped++
//	}
var ErrCapacityExceeded = fmt.Errorf("ringspan: capacity exceeded: %w", iox.ErrWouldBlock)

// RangeError reports a checked access outside the live window.
type RangeError struct {
	Index int // Requested logical index
	Len   int // Number of live elements at the time of access
}

func (e *RangeError) Error() string {
	return "ringspan: index " + strconv.Itoa(e.Index) + " out of range [0:" + strconv.Itoa(e.Len) + ")"
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
