package ringbuffer

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"zero rounds to one", 0, 1},
		{"power of two kept", 8, 8},
		{"rounds up", 5, 8},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New[int](tt.capacity)
			if err != nil {
				t.Fatalf("New(%d) error = %v", tt.capacity, err)
			}
			if r.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", r.Cap(), tt.wantCap)
			}
		})
	}
}

func TestNewNegativeCapacity(t *testing.T) {
	if _, err := New[int](-1); !errors.Is(err, ErrNegativeCapacity) {
		t.Errorf("New(-1) error = %v, want ErrNegativeCapacity", err)
	}
}

func TestPushPopBothEnds(t *testing.T) {
	r, _ := New[int](4)
	r.PushBack(1)
	r.PushBack(2)
	r.PushFront(0)
	r.PushBack(3)

	if got, want := r.ToSlice(), []int{0, 1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("ToSlice() = %v, want %v", got, want)
	}

	if v, ok := r.PopFront(); !ok || v != 0 {
		t.Errorf("PopFront() = %v, %v, want 0, true", v, ok)
	}
	if v, ok := r.PopBack(); !ok || v != 3 {
		t.Errorf("PopBack() = %v, %v, want 3, true", v, ok)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	r, _ := New[int](2)
	if _, ok := r.PopFront(); ok {
		t.Error("PopFront() on empty buffer returned ok")
	}
	if _, ok := r.PopBack(); ok {
		t.Error("PopBack() on empty buffer returned ok")
	}
}

func TestGrowDoublesAndPreservesOrder(t *testing.T) {
	r, _ := New[int](2)
	// Force wraparound before growth.
	r.PushBack(1)
	r.PushBack(2)
	r.PopFront()
	r.PushBack(3)
	if r.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2 before growth", r.Cap())
	}

	r.PushBack(4) // overflow, doubles
	if r.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4 after growth", r.Cap())
	}
	if got, want := r.ToSlice(), []int{2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("ToSlice() = %v, want %v", got, want)
	}
}

func TestWraparoundSustainedChurn(t *testing.T) {
	r, _ := New[int](4)
	for i := 0; i < 100; i++ {
		r.PushBack(i)
		if v, ok := r.PopFront(); !ok || v != i {
			t.Fatalf("cycle %d: PopFront() = %v, %v", i, v, ok)
		}
	}
	if r.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4 (steady churn must not grow)", r.Cap())
	}
}

func TestPeek(t *testing.T) {
	r := FromSlice([]int{1, 2, 3})

	if v, ok := r.PeekFront(); !ok || v != 1 {
		t.Errorf("PeekFront() = %v, %v, want 1, true", v, ok)
	}
	if v, ok := r.PeekBack(); !ok || v != 3 {
		t.Errorf("PeekBack() = %v, %v, want 3, true", v, ok)
	}
	if r.Len() != 3 {
		t.Errorf("Len() after peeks = %d, want 3", r.Len())
	}
}

func TestFromSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	r := FromSlice(in)
	if got := r.ToSlice(); !slices.Equal(got, in) {
		t.Errorf("ToSlice() = %v, want %v", got, in)
	}
	if r.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", r.Cap())
	}
}

func TestValues(t *testing.T) {
	r := FromSlice([]int{9, 8, 7})
	var got []int
	for v := range r.Values() {
		got = append(got, v)
	}
	if want := []int{9, 8, 7}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestPopZeroesSlot(t *testing.T) {
	r, _ := New[*int](2)
	x := 1
	r.PushBack(&x)
	r.PopFront()
	// The vacated slot must not pin the element for the GC.
	if r.buf[0] != nil {
		t.Error("PopFront left a reference in the vacated slot")
	}
}
