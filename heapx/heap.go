// Package heapx implements an array-backed binary heap ordered by a
// caller-supplied comparison function.
package heapx

import (
	"container/heap"
	"iter"
	"slices"
)

// LessFunc reports whether a should surface before b. A < ordering
// yields a min-heap, > a max-heap.
type LessFunc[T any] func(a, b T) bool

// Heap is a binary heap over a slice. Not goroutine-safe.
type Heap[T any] struct {
	items []T
	less  LessFunc[T]
}

var _ heap.Interface = (*Heap[int])(nil)

// New returns an empty heap ordered by less.
func New[T any](less LessFunc[T], opts ...Option) *Heap[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Heap[T]{items: make([]T, 0, o.capacity), less: less}
}

// NewFromSlice returns a heap holding a copy of items, established in
// O(n) by bulk heapify rather than n sift-ups.
func NewFromSlice[T any](less LessFunc[T], items []T) *Heap[T] {
	h := &Heap[T]{items: slices.Clone(items), less: less}
	heap.Init(h)
	return h
}

type options struct {
	capacity int
}

// Option configures a Heap.
type Option func(*options)

// WithCapacity pre-allocates space for capacity items.
func WithCapacity(capacity int) Option {
	return func(o *options) { o.capacity = capacity }
}

// Len returns the number of items.
func (h *Heap[T]) Len() int { return len(h.items) }

// Empty returns whether the heap holds no items.
func (h *Heap[T]) Empty() bool { return len(h.items) == 0 }

// Less, Swap, Push and Pop implement heap.Interface; use PushItem and
// PopItem instead of calling them directly.

func (h *Heap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *Heap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *Heap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *Heap[T]) Pop() any {
	n := len(h.items)
	x := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return x
}

// PushItem adds x to the heap in O(log n) via sift-up.
func (h *Heap[T]) PushItem(x T) {
	heap.Push(h, x)
}

// PopItem removes and returns the top item, restoring order in
// O(log n) via sift-down. Returns false if the heap is empty.
func (h *Heap[T]) PopItem() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return heap.Pop(h).(T), true
}

// Peek returns the top item without removing it. Returns false if the
// heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Values returns a draining iterator: items are popped in heap order,
// so consuming it empties the heap.
func (h *Heap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(h.items) > 0 {
			if !yield(heap.Pop(h).(T)) {
				return
			}
		}
	}
}
