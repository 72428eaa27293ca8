// Package deque implements a pointer-based doubly linked deque with
// per-node heap allocation. For a fixed-capacity variant that allocates
// all nodes up front, see the inlinedeque package.
package deque

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a list element. Its Value is exported for direct access; the
// links are owned by the deque.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
	owner      *Deque[T] // for remove validation; nil once removed
}

// Next returns the node linked after n, or nil at the back.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node linked before n, or nil at the front.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Deque is a double-ended queue over heap-allocated nodes. The zero
// value is ready to use. Not goroutine-safe.
type Deque[T any] struct {
	head, tail *Node[T]
	length     int
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// FromSlice returns a deque holding the elements of s in order.
func FromSlice[T any](s []T) *Deque[T] {
	d := New[T]()
	for _, v := range s {
		d.PushBack(v)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.length }

// Empty returns whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.length == 0 }

// Front returns the first node, or nil if empty.
func (d *Deque[T]) Front() *Node[T] { return d.head }

// Back returns the last node, or nil if empty.
func (d *Deque[T]) Back() *Node[T] { return d.tail }

// PushFront inserts v at the front and returns its node.
func (d *Deque[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, owner: d}
	if d.head != nil {
		n.next = d.head
		d.head.prev = n
	} else {
		d.tail = n
	}
	d.head = n
	d.length++
	return n
}

// PushBack inserts v at the back and returns its node.
func (d *Deque[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, owner: d}
	if d.tail != nil {
		n.prev = d.tail
		d.tail.next = n
	} else {
		d.head = n
	}
	d.tail = n
	d.length++
	return n
}

// PopFront removes and returns the front element. Returns false if
// the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == nil {
		return zero, false
	}
	v, _ := d.Remove(d.head)
	return v, true
}

// PopBack removes and returns the back element. Returns false if the
// deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.tail == nil {
		return zero, false
	}
	v, _ := d.Remove(d.tail)
	return v, true
}

// Remove unlinks n from the deque and returns its value. Returns false
// if n is nil, already removed, or belongs to another deque; the deque
// is unchanged in that case.
func (d *Deque[T]) Remove(n *Node[T]) (T, bool) {
	var zero T
	if n == nil || n.owner != d {
		return zero, false
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		d.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		d.tail = n.prev
	}

	// Clear links so a retained node cannot re-traverse the chain, and
	// mark it removed for double-remove protection.
	n.prev = nil
	n.next = nil
	n.owner = nil
	d.length--
	return n.Value, true
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// ToSlice copies the elements front to back into a fresh slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, 0, d.length)
	for n := d.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// String renders the elements front to back as [e0, e1, e2].
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := d.head; n != nil; n = n.next {
		if n != d.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", n.Value)
	}
	b.WriteByte(']')
	return b.String()
}
