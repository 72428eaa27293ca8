// Package inlinedeque implements a doubly linked deque backed by a
// fixed-capacity node arena. Nodes live inline in one contiguous
// allocation; prev/next links are slot indices, so no per-node heap
// allocation ever happens after construction.
package inlinedeque

import (
	"fmt"
	"iter"
	"strings"
)

// none marks an absent prev/next/head/tail link.
const none int32 = -1

// slot is one arena cell. A slot is allocated the first time Append or
// Prepend writes into it and is never reused; linked tracks whether it
// currently participates in the head-to-tail chain.
type slot[T any] struct {
	value  T
	prev   int32
	next   int32
	linked bool
}

// Node is a stable handle to an allocated slot. It stays valid for the
// lifetime of the owning deque, even after the slot is unlinked, but
// only linked nodes may be passed to RemoveAt, After, Before or Value.
// The zero Node is not a valid handle.
type Node struct {
	i int32 // slot index + 1, so the zero Node never aliases slot 0
}

// InlineDeque is a double-ended queue whose nodes are stored in a flat
// arena of exactly the declared capacity. Append, Prepend, RemoveFirst,
// RemoveLast and RemoveAt are all O(1) and never allocate.
//
// The arena is fixed: appending past the declared capacity is a caller
// bug and panics. Removed slots are unlinked but not reclaimed; the
// allocation frontier only grows. The whole arena is dropped at once by
// Release.
//
// Not goroutine-safe. Single owner, single thread.
type InlineDeque[T any] struct {
	slots  []slot[T]
	head   int32
	tail   int32
	count  int   // linked elements
	stored int32 // allocation frontier, monotonic
}

// New creates a deque with a fixed arena of exactly capacity slots.
// No slot is allocated yet. Panics if capacity is negative.
func New[T any](capacity int) *InlineDeque[T] {
	if capacity < 0 {
		panic("inlinedeque: negative capacity")
	}
	return &InlineDeque[T]{
		slots: make([]slot[T], capacity),
		head:  none,
		tail:  none,
	}
}

// FromSlice creates a deque sized exactly to len(s) and appends every
// element in order. The resulting deque is full: stored == capacity.
func FromSlice[T any](s []T) *InlineDeque[T] {
	d := New[T](len(s))
	for _, v := range s {
		d.Append(v)
	}
	return d
}

// Collect creates a deque sized to length and appends every element of
// seq in order. It panics if seq does not yield exactly length
// elements, so a sequence with a misreported length fails fast instead
// of silently truncating or overflowing.
func Collect[T any](seq iter.Seq[T], length int) *InlineDeque[T] {
	d := New[T](length)
	n := 0
	for v := range seq {
		if n == length {
			panic("inlinedeque: sequence longer than declared length")
		}
		d.Append(v)
		n++
	}
	if n != length {
		panic(fmt.Sprintf("inlinedeque: sequence yielded %d elements, declared %d", n, length))
	}
	return d
}

// Len returns the number of currently linked elements.
func (d *InlineDeque[T]) Len() int { return d.count }

// Cap returns the fixed arena capacity declared at construction.
func (d *InlineDeque[T]) Cap() int { return len(d.slots) }

// Stored returns the number of slots ever allocated. It only grows;
// removal does not reclaim slots.
func (d *InlineDeque[T]) Stored() int { return int(d.stored) }

// Empty returns whether no element is linked.
func (d *InlineDeque[T]) Empty() bool { return d.count == 0 }

// Full returns whether the allocation frontier reached the capacity.
// A full deque rejects Append and Prepend even if elements were removed.
func (d *InlineDeque[T]) Full() bool { return int(d.stored) == len(d.slots) }

// Append writes v into the next unused slot and links it after the
// current tail. O(1), no allocation. Panics if the arena is exhausted;
// the deque is unchanged in that case.
func (d *InlineDeque[T]) Append(v T) Node {
	i := d.alloc(v)
	s := &d.slots[i]
	s.prev = d.tail
	if d.tail != none {
		d.slots[d.tail].next = i
	} else {
		d.head = i
	}
	d.tail = i
	d.count++
	return Node{i + 1}
}

// Prepend writes v into the next unused slot and links it before the
// current head. O(1), no allocation. Panics if the arena is exhausted;
// the deque is unchanged in that case.
func (d *InlineDeque[T]) Prepend(v T) Node {
	i := d.alloc(v)
	s := &d.slots[i]
	s.next = d.head
	if d.head != none {
		d.slots[d.head].prev = i
	} else {
		d.tail = i
	}
	d.head = i
	d.count++
	return Node{i + 1}
}

// alloc claims the slot at the frontier and writes v with cleared
// links. The caller wires the slot into the chain.
func (d *InlineDeque[T]) alloc(v T) int32 {
	d.panicIfReleased()
	if int(d.stored) == len(d.slots) {
		panic("inlinedeque: append past fixed capacity")
	}
	i := d.stored
	d.stored++
	s := &d.slots[i]
	s.value = v
	s.prev = none
	s.next = none
	s.linked = true
	return i
}

// RemoveFirst unlinks and returns the front element. Returns false on
// an empty deque. The slot is not reclaimed.
func (d *InlineDeque[T]) RemoveFirst() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := d.head
	if d.head == d.tail {
		d.head, d.tail = none, none
	} else {
		d.head = d.slots[i].next
		d.slots[d.head].prev = none
	}
	return d.detach(i), true
}

// RemoveLast unlinks and returns the back element. Returns false on an
// empty deque. The slot is not reclaimed.
func (d *InlineDeque[T]) RemoveLast() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := d.tail
	if d.head == d.tail {
		d.head, d.tail = none, none
	} else {
		d.tail = d.slots[i].prev
		d.slots[d.tail].next = none
	}
	return d.detach(i), true
}

// Next drains the deque from the back: it is RemoveLast under the name
// a pull-style consumer expects. Use RemoveFirst for FIFO consumption.
func (d *InlineDeque[T]) Next() (T, bool) { return d.RemoveLast() }

// RemoveAt unlinks the slot n refers to and returns its value, in O(1)
// regardless of position. This is the operation the arena layout exists
// for: middle removal from a contiguous sequence is O(n), here links
// define order so a bypass splice suffices.
//
// n must be a currently linked node of this deque; RemoveAt panics
// otherwise. A linked node of another deque that happens to hold a
// valid index is undetectable and remains a caller bug.
func (d *InlineDeque[T]) RemoveAt(n Node) T {
	i := d.resolve(n, "RemoveAt")
	s := &d.slots[i]
	switch {
	case d.head == i && d.tail == i:
		d.head, d.tail = none, none
	case d.head == i:
		d.head = s.next
		d.slots[d.head].prev = none
	case d.tail == i:
		d.tail = s.prev
		d.slots[d.tail].next = none
	default:
		d.slots[s.prev].next = s.next
		d.slots[s.next].prev = s.prev
	}
	return d.detach(i)
}

// detach clears the slot's links and value, marks it unlinked, and
// returns the value it held. Clearing the value releases any references
// to the garbage collector; clearing the links keeps a stale handle
// from re-traversing into the chain.
func (d *InlineDeque[T]) detach(i int32) T {
	s := &d.slots[i]
	v := s.value
	var zero T
	s.value = zero
	s.prev = none
	s.next = none
	s.linked = false
	d.count--
	return v
}

// First returns the front element without removing it. Returns false on
// an empty deque.
func (d *InlineDeque[T]) First() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.slots[d.head].value, true
}

// Last returns the back element without removing it. Returns false on
// an empty deque.
func (d *InlineDeque[T]) Last() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.slots[d.tail].value, true
}

// FirstNode returns a handle to the front node, or false if empty.
func (d *InlineDeque[T]) FirstNode() (Node, bool) {
	if d.count == 0 {
		return Node{}, false
	}
	return Node{d.head + 1}, true
}

// LastNode returns a handle to the back node, or false if empty.
func (d *InlineDeque[T]) LastNode() (Node, bool) {
	if d.count == 0 {
		return Node{}, false
	}
	return Node{d.tail + 1}, true
}

// After returns the handle of the node linked after n, re-resolved
// through the arena, or false if n is the tail. Panics if n is not a
// linked node of this deque.
func (d *InlineDeque[T]) After(n Node) (Node, bool) {
	i := d.resolve(n, "After")
	nx := d.slots[i].next
	if nx == none {
		return Node{}, false
	}
	return Node{nx + 1}, true
}

// Before returns the handle of the node linked before n, or false if n
// is the head. Panics if n is not a linked node of this deque.
func (d *InlineDeque[T]) Before(n Node) (Node, bool) {
	i := d.resolve(n, "Before")
	pv := d.slots[i].prev
	if pv == none {
		return Node{}, false
	}
	return Node{pv + 1}, true
}

// Value returns the element stored at n. Panics if n is not a linked
// node of this deque.
func (d *InlineDeque[T]) Value(n Node) T {
	return d.slots[d.resolve(n, "Value")].value
}

// ForEach walks head to tail, calling f for every linked element in
// order, or until the first call that returns false. The deque must not
// be mutated during the walk.
func (d *InlineDeque[T]) ForEach(f func(T) bool) {
	for i := d.head; i != none; i = d.slots[i].next {
		if !f(d.slots[i].value) {
			return
		}
	}
}

// Values returns an iterator over the linked elements, front to back.
func (d *InlineDeque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.head; i != none; i = d.slots[i].next {
			if !yield(d.slots[i].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the linked elements, back to front,
// following prev links from the tail.
func (d *InlineDeque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.tail; i != none; i = d.slots[i].prev {
			if !yield(d.slots[i].value) {
				return
			}
		}
	}
}

// ToSlice copies the linked elements front to back into a fresh slice
// with capacity reserved up front. The deque is not consumed.
func (d *InlineDeque[T]) ToSlice() []T {
	out := make([]T, 0, d.count)
	for i := d.head; i != none; i = d.slots[i].next {
		out = append(out, d.slots[i].value)
	}
	return out
}

// String renders the linked elements front to back as [e0, e1, e2].
// An empty deque renders as [].
func (d *InlineDeque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for i := d.head; i != none; i = d.slots[i].next {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", d.slots[i].value)
	}
	b.WriteByte(']')
	return b.String()
}

// Release drops the arena in one bulk deallocation and makes the deque
// unusable. Every handle derived from it is invalidated. Subsequent
// allocation or handle resolution panics; queries observe an empty
// deque.
func (d *InlineDeque[T]) Release() {
	d.slots = nil
	d.head, d.tail = none, none
	d.count = 0
	d.stored = 0
}

// resolve maps a handle to its slot index, panicking when the handle
// does not name a currently linked slot of this deque.
func (d *InlineDeque[T]) resolve(n Node, op string) int32 {
	d.panicIfReleased()
	i := n.i - 1
	if i < 0 || i >= d.stored || !d.slots[i].linked {
		panic("inlinedeque: " + op + " of a node that is not linked")
	}
	return i
}

// panicIfReleased panics if the arena has been released.
func (d *InlineDeque[T]) panicIfReleased() {
	if d.slots == nil {
		panic("inlinedeque: use after Release()")
	}
}
