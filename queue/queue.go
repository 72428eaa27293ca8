// Package queue implements a singly linked FIFO queue.
package queue

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a first-in-first-out queue over singly linked nodes. The
// zero value is ready to use. Not goroutine-safe.
type Queue[T any] struct {
	head, tail *node[T]
	length     int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// FromSlice returns a queue holding the elements of s in order, front
// of the queue first.
func FromSlice[T any](s []T) *Queue[T] {
	q := New[T]()
	for _, v := range s {
		q.Enqueue(v)
	}
	return q
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.length }

// Empty returns whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.length == 0 }

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.length++
}

// Dequeue removes and returns the front element. Returns false if the
// queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head == nil {
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n.value, true
}

// Peek returns the front element without removing it. Returns false if
// the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.head == nil {
		return zero, false
	}
	return q.head.value, true
}

// Values returns an iterator over the elements, front to back.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice copies the elements front to back into a fresh slice.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.length)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
