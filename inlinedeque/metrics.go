package inlinedeque

// Linked returns the number of slots currently in the head-to-tail
// chain. Identical to Len; provided for symmetry with Detached.
func (d *InlineDeque[T]) Linked() int { return d.count }

// Detached returns the number of slots that were allocated and later
// unlinked. These slots stay claimed until Release.
func (d *InlineDeque[T]) Detached() int { return int(d.stored) - d.count }

// Utilization returns the ratio of allocated slots to capacity
// (0.0 to 1.0). Returns 0.0 for a zero-capacity deque.
func (d *InlineDeque[T]) Utilization() float64 {
	if len(d.slots) == 0 {
		return 0
	}
	return float64(d.stored) / float64(len(d.slots))
}

// Metrics returns a snapshot of deque statistics.
func (d *InlineDeque[T]) Metrics() Metrics {
	return Metrics{
		Capacity:    d.Cap(),
		Stored:      d.Stored(),
		Linked:      d.Linked(),
		Detached:    d.Detached(),
		Utilization: d.Utilization(),
	}
}

// Metrics contains statistical information about a deque's arena.
type Metrics struct {
	Capacity    int     // Fixed arena capacity
	Stored      int     // Slots ever allocated (monotonic)
	Linked      int     // Slots currently in the chain
	Detached    int     // Allocated slots no longer linked
	Utilization float64 // Stored / Capacity (0.0-1.0)
}
