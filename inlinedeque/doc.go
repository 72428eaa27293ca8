// Package inlinedeque implements an arena-backed doubly linked deque.
//
// # Overview
//
// An InlineDeque pre-allocates a flat arena of node slots sized to the
// caller-declared maximum element count and threads prev/next links
// through slot indices. Compared to a pointer-based linked deque this
// gives:
//
//   - One allocation for the whole structure, no per-node allocation
//   - O(1) append, prepend, and removal at any position via a Node handle
//   - Cache-friendly node storage in one contiguous block
//   - Stable handles: a Node keeps naming the same slot for the deque's
//     lifetime
//
// # Basic Usage
//
//	d := inlinedeque.New[int](4)
//	defer d.Release() // drop the arena in one go
//
//	d.Append(1)
//	d.Append(2)
//	n := d.Append(3)
//	d.Prepend(0)
//
//	d.RemoveAt(n)          // O(1) removal from the middle
//	s := d.ToSlice()       // [0 1 2]
//	v, ok := d.RemoveFirst()
//	_ = s; _, _ = v, ok
//
// # Capacity Model
//
// The arena is fixed at construction. Slots are claimed lazily by
// Append and Prepend, and a removed slot is never reused: the
// allocation frontier (Stored) only grows. Appending once the frontier
// reaches the capacity is a caller bug and panics before mutating
// anything. Size the deque to the total number of insertions it will
// ever see, not to its peak length.
//
// # Thread Safety
//
// InlineDeque is single-owner, single-thread. No operation locks, and
// concurrent access of any kind, including read-only traversal during a
// mutation, is undefined behavior.
//
// # Handles
//
// Append and Prepend return a Node handle addressing the new slot.
// Handles stay valid until Release, but only currently linked nodes may
// be passed to RemoveAt, After, Before, or Value; anything else panics
// rather than corrupting links.
//
// # Performance Characteristics
//
//   - Append / Prepend / RemoveFirst / RemoveLast / RemoveAt: O(1)
//   - ForEach / ToSlice / String: O(n)
//   - Memory: capacity × slot size, allocated once, freed by Release
package inlinedeque
