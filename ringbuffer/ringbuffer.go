// Package ringbuffer implements a double-ended circular buffer over a
// power-of-two backing slice. Pushing to a full buffer doubles it;
// the buffer never shrinks.
package ringbuffer

import (
	"errors"
	"iter"
	"math/bits"
)

// ErrNegativeCapacity is returned when constructing a buffer with a
// negative capacity.
var ErrNegativeCapacity = errors.New("ringbuffer: capacity cannot be negative")

// RingBuffer is a circular buffer usable from both ends. Indices only
// ever grow; masking maps them into the power-of-two buffer.
// Not goroutine-safe.
type RingBuffer[T any] struct {
	buf              []T
	head, tail, mask uint
}

// New returns a buffer whose capacity is capacity rounded up to the
// next power of two, minimum 1.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	c := ceilPow2(max(1, uint(capacity)))
	return &RingBuffer[T]{buf: make([]T, c), mask: c - 1}, nil
}

// FromSlice returns a buffer holding the elements of s in order, with
// capacity len(s) rounded up to the next power of two.
func FromSlice[T any](s []T) *RingBuffer[T] {
	r, _ := New[T](len(s))
	copy(r.buf, s)
	r.tail = uint(len(s))
	return r
}

// Len returns the number of elements.
func (r *RingBuffer[T]) Len() int { return int(r.tail - r.head) }

// Cap returns the current buffer capacity.
func (r *RingBuffer[T]) Cap() int { return len(r.buf) }

// Empty returns whether the buffer holds no elements.
func (r *RingBuffer[T]) Empty() bool { return r.head == r.tail }

// Full returns whether the next push will double the buffer.
func (r *RingBuffer[T]) Full() bool { return r.Len() == len(r.buf) }

// PushBack appends v at the back, doubling the buffer if full.
func (r *RingBuffer[T]) PushBack(v T) {
	if r.Full() {
		r.grow()
	}
	r.buf[r.tail&r.mask] = v
	r.tail++
}

// PushFront inserts v at the front, doubling the buffer if full.
func (r *RingBuffer[T]) PushFront(v T) {
	if r.Full() {
		r.grow()
	}
	r.head--
	r.buf[r.head&r.mask] = v
}

// PopFront removes and returns the front element, zeroing its slot.
// Returns false if the buffer is empty.
func (r *RingBuffer[T]) PopFront() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	i := r.head & r.mask
	v := r.buf[i]
	r.buf[i] = zero
	r.head++
	return v, true
}

// PopBack removes and returns the back element, zeroing its slot.
// Returns false if the buffer is empty.
func (r *RingBuffer[T]) PopBack() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	r.tail--
	i := r.tail & r.mask
	v := r.buf[i]
	r.buf[i] = zero
	return v, true
}

// PeekFront returns the front element without removing it. Returns
// false if the buffer is empty.
func (r *RingBuffer[T]) PeekFront() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	return r.buf[r.head&r.mask], true
}

// PeekBack returns the back element without removing it. Returns false
// if the buffer is empty.
func (r *RingBuffer[T]) PeekBack() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	return r.buf[(r.tail-1)&r.mask], true
}

// grow doubles the buffer, unwrapping the elements into index order.
func (r *RingBuffer[T]) grow() {
	newCap := uint(len(r.buf)) << 1
	newBuf := make([]T, newCap)
	n := uint(r.Len())
	for i := uint(0); i < n; i++ {
		newBuf[i] = r.buf[(r.head+i)&r.mask]
	}
	r.buf = newBuf
	r.head = 0
	r.tail = n
	r.mask = newCap - 1
}

// Values returns an iterator over the elements, front to back.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := r.head; i != r.tail; i++ {
			if !yield(r.buf[i&r.mask]) {
				return
			}
		}
	}
}

// ToSlice copies the elements front to back into a fresh slice.
func (r *RingBuffer[T]) ToSlice() []T {
	out := make([]T, 0, r.Len())
	for i := r.head; i != r.tail; i++ {
		out = append(out, r.buf[i&r.mask])
	}
	return out
}

func ceilPow2(x uint) uint {
	if x == 0 {
		return 1
	}
	msb := bits.UintSize - 1 - bits.LeadingZeros(x)
	result := uint(1) << msb
	if result < x {
		result <<= 1
	}
	return result
}
