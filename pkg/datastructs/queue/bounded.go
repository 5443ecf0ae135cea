package queue

import (
	"github.com/dpham-dev/go-ringkit/pkg/datastructs/fixedring"
)

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity FIFO queue over caller-owned storage, backed
// by a fixedring.Ring. It rejects enqueues at capacity rather than
// overwriting, never allocates after construction, and is not safe for
// concurrent use.
type Bounded[T any] struct {
	ring *fixedring.Ring[T]
}

// NewBounded creates a queue over the given backing storage. The queue's
// capacity is len(storage); the caller retains ownership of the slice and
// must not access it directly while the queue is in use.
func NewBounded[T any](storage []T) (*Bounded[T], error) {
	ring, err := fixedring.Attach(storage)
	if err != nil {
		return nil, err
	}
	return &Bounded[T]{ring: ring}, nil
}

// Enqueue adds an item. Returns false if the queue is full.
func (q *Bounded[T]) Enqueue(item T) bool {
	return q.ring.AddTail(item) == nil
}

// Dequeue removes and returns the oldest item.
// Returns (zero, false) if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, bool) {
	var item T
	if err := q.ring.RemoveHead(&item); err != nil {
		return item, false
	}
	return item, true
}

// Capacity returns the total capacity of the queue.
func (q *Bounded[T]) Capacity() uint64 {
	return uint64(q.ring.Cap())
}

// Len returns the number of queued items.
func (q *Bounded[T]) Len() int {
	return q.ring.Len()
}
