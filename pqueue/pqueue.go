// Package pqueue implements a priority queue of (value, weight) pairs
// on top of the heapx binary heap.
package pqueue

import (
	"cmp"

	"github.com/Vaida12345/Optimization/heapx"
)

type entry[E any, W cmp.Ordered] struct {
	value  E
	weight W
}

// PriorityQueue dequeues values by weight. Use NewMin for lowest
// weight first, NewMax for highest. Not goroutine-safe.
type PriorityQueue[E any, W cmp.Ordered] struct {
	h *heapx.Heap[entry[E, W]]
}

// NewMin returns a queue that dequeues the lowest weight first.
func NewMin[E any, W cmp.Ordered]() *PriorityQueue[E, W] {
	return &PriorityQueue[E, W]{
		h: heapx.New(func(a, b entry[E, W]) bool { return a.weight < b.weight }),
	}
}

// NewMax returns a queue that dequeues the highest weight first.
func NewMax[E any, W cmp.Ordered]() *PriorityQueue[E, W] {
	return &PriorityQueue[E, W]{
		h: heapx.New(func(a, b entry[E, W]) bool { return a.weight > b.weight }),
	}
}

// Len returns the number of queued values.
func (q *PriorityQueue[E, W]) Len() int { return q.h.Len() }

// Empty returns whether the queue holds no values.
func (q *PriorityQueue[E, W]) Empty() bool { return q.h.Empty() }

// Enqueue adds v with the given weight in O(log n).
func (q *PriorityQueue[E, W]) Enqueue(v E, weight W) {
	q.h.PushItem(entry[E, W]{value: v, weight: weight})
}

// Dequeue removes and returns the best-weighted value in O(log n).
// Returns false if the queue is empty.
func (q *PriorityQueue[E, W]) Dequeue() (E, bool) {
	e, ok := q.h.PopItem()
	return e.value, ok
}

// DequeueWeighted is Dequeue, also reporting the value's weight.
func (q *PriorityQueue[E, W]) DequeueWeighted() (E, W, bool) {
	e, ok := q.h.PopItem()
	return e.value, e.weight, ok
}

// Peek returns the best-weighted value and its weight without removing
// it. Returns false if the queue is empty.
func (q *PriorityQueue[E, W]) Peek() (E, W, bool) {
	e, ok := q.h.Peek()
	return e.value, e.weight, ok
}
