// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspan_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringspan"
)

// =============================================================================
// Panic Tests (Consolidated)
// =============================================================================

// TestPanicOnNonPow2AllConstructors tests that every constructor panics for
// a capacity that is not a power of 2.
func TestPanicOnNonPow2AllConstructors(t *testing.T) {
	three := make([]int, 3)
	constructors := []struct {
		name string
		fn   func()
	}{
		{"New_Zero", func() { ringspan.New([]int{}) }},
		{"New_Nil", func() { ringspan.New[int](nil) }},
		{"New_Three", func() { ringspan.New(three) }},
		{"New_Six", func() { ringspan.New(make([]int, 6)) }},
		{"NewFromContainer", func() { ringspan.NewFromContainer[int](&block{elems: make([]int, 12)}) }},
		{"NewFromPointer", func() { ringspan.NewFromPointer(&three[0], 3) }},
		{"NewFromPointer_Negative", func() { ringspan.NewFromPointer(&three[0], -4) }},
		{"NewFromPointer_Nil", func() { ringspan.NewFromPointer[int](nil, 4) }},
		{"Over", func() { ringspan.Over(make([]int, 5)) }},
		{"NewBounded", func() { ringspan.NewBounded(make([]int, 7)) }},
		{"NewShared", func() { ringspan.NewShared(make([]int, 10)) }},
	}

	for c := range slices.Values(constructors) {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "ringspan: ") {
					t.Fatalf("panic value: got %v", r)
				}
			}()
			c.fn()
		})
	}
}

// =============================================================================
// Capacity Helpers
// =============================================================================

// TestIsPow2 tests power-of-two detection.
func TestIsPow2(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-8, false},
		{-1, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{6, false},
		{255, false},
		{256, true},
		{1 << 30, true},
		{1<<30 + 1, false},
	}

	for tc := range slices.Values(tests) {
		if got := ringspan.IsPow2(tc.n); got != tc.want {
			t.Errorf("IsPow2(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

// TestRoundToPow2 tests that sizes round up to the next power of 2.
func TestRoundToPow2(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		// Small and non-positive sizes
		{-5, 1},
		{0, 1},
		{1, 1},
		// Powers of 2 remain unchanged
		{2, 2},
		{4, 4},
		{64, 64},
		{1024, 1024},
		// Non-powers round up to next power of 2
		{3, 4},
		{5, 8},
		{9, 16},
		{100, 128},
		{1000, 1024},
	}

	for tc := range slices.Values(tests) {
		got := ringspan.RoundToPow2(tc.input)
		if got != tc.expected {
			t.Errorf("RoundToPow2(%d) = %d, want %d", tc.input, got, tc.expected)
		}
		// Rounded sizes are always accepted by New
		v := ringspan.New(make([]int, got))
		if v.Cap() != got {
			t.Errorf("New(RoundToPow2(%d)).Cap() = %d", tc.input, v.Cap())
		}
	}
}

// TestCompileTimeCapacityCheck exercises the constant-capacity idiom from
// the package documentation.
func TestCompileTimeCapacityCheck(t *testing.T) {
	const N = 64
	var _ [0]struct{} = [N & (N - 1)]struct{}{}

	var storage [N]int
	v := ringspan.New(storage[:])
	if v.Cap() != N {
		t.Fatalf("Cap: got %d, want %d", v.Cap(), N)
	}
}

// =============================================================================
// Error Classification
// =============================================================================

// TestErrorClassification tests the iox-backed error helpers.
func TestErrorClassification(t *testing.T) {
	if !errors.Is(ringspan.ErrWouldBlock, iox.ErrWouldBlock) {
		t.Fatal("ErrWouldBlock is not iox.ErrWouldBlock")
	}
	if !ringspan.IsWouldBlock(ringspan.ErrWouldBlock) {
		t.Fatal("IsWouldBlock(ErrWouldBlock): got false")
	}
	if !ringspan.IsWouldBlock(ringspan.ErrCapacityExceeded) {
		t.Fatal("IsWouldBlock(ErrCapacityExceeded): got false")
	}
	if !errors.Is(ringspan.ErrCapacityExceeded, ringspan.ErrWouldBlock) {
		t.Fatal("ErrCapacityExceeded does not wrap ErrWouldBlock")
	}
	if errors.Is(ringspan.ErrWouldBlock, ringspan.ErrCapacityExceeded) {
		t.Fatal("ErrWouldBlock matches ErrCapacityExceeded")
	}
	if !ringspan.IsSemantic(ringspan.ErrWouldBlock) {
		t.Fatal("IsSemantic(ErrWouldBlock): got false")
	}
	if !ringspan.IsNonFailure(nil) || !ringspan.IsNonFailure(ringspan.ErrWouldBlock) {
		t.Fatal("IsNonFailure: got false for nil or ErrWouldBlock")
	}

	var re error = &ringspan.RangeError{Index: 5, Len: 3}
	if ringspan.IsWouldBlock(re) {
		t.Fatal("IsWouldBlock(RangeError): got true")
	}
	if ringspan.IsNonFailure(re) {
		t.Fatal("IsNonFailure(RangeError): got true")
	}
	if got, want := re.Error(), "ringspan: index 5 out of range [0:3)"; got != want {
		t.Fatalf("RangeError: got %q, want %q", got, want)
	}
}

// =============================================================================
// Builder
// =============================================================================

// TestBuilderVariants tests that every builder output shares the storage
// and capacity.
func TestBuilderVariants(t *testing.T) {
	storage := make([]int, 8)

	v := ringspan.Over(storage).Build()
	v.PushBack(1)
	if storage[0] != 1 {
		t.Fatalf("Build: storage[0] got %d, want 1", storage[0])
	}

	b := ringspan.Over(storage).BuildBounded()
	if b.Cap() != 8 || b.Len() != 0 {
		t.Fatalf("BuildBounded: Cap/Len got %d/%d, want 8/0", b.Cap(), b.Len())
	}

	s := ringspan.Over(storage).BuildShared()
	if s.Cap() != 8 || s.Len() != 0 {
		t.Fatalf("BuildShared: Cap/Len got %d/%d, want 8/0", s.Cap(), s.Len())
	}

	for q := range slices.Values([]ringspan.Queue[int]{b, s}) {
		if q.Cap() != 8 {
			t.Fatalf("Queue.Cap: got %d, want 8", q.Cap())
		}
	}
}

// TestFullEmpty tests Full and Empty transitions.
func TestFullEmpty(t *testing.T) {
	var storage [2]int
	v := ringspan.New(storage[:])

	if !v.Empty() || v.Full() {
		t.Fatal("new view: want Empty and not Full")
	}
	v.PushBack(1)
	if v.Empty() || v.Full() {
		t.Fatal("one element: want neither Empty nor Full")
	}
	v.PushBack(2)
	if !v.Full() {
		t.Fatal("two elements: want Full")
	}
	v.PushBack(3)
	if !v.Full() || v.Len() != 2 {
		t.Fatalf("after eviction: Full=%v Len=%d", v.Full(), v.Len())
	}
	v.Clear()
	if !v.Empty() {
		t.Fatal("after Clear: want Empty")
	}
}
