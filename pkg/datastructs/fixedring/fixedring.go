// Package fixedring provides fixed-capacity FIFO ring queues over
// caller-owned contiguous storage.
//
// A ring never allocates, grows, or frees: it binds to a slice the caller
// provides at construction and only moves head/tail indices over it. The
// caller retains ownership of the storage and must keep it alive for the
// lifetime of the ring, and must not touch it directly while the ring is in
// use. Adding to a full ring and removing from an empty ring fail with
// ErrFull and ErrEmpty respectively and leave the ring unchanged.
//
// Two variants are provided: Ring[T] stores typed elements in a []T, and Raw
// stores opaque fixed-size elements in a []byte region with an explicit
// element size. All operations are O(1) and none are safe for concurrent
// use; callers that share a ring across goroutines must serialize access
// externally.
package fixedring

// CopyFunc copies src into dst in place of plain assignment. Install one via
// WithCopy when elements need more than a shallow copy, e.g. to truncate or
// deep-copy nested fields. The same function is used on both add and remove.
type CopyFunc[T any] func(dst *T, src *T)

// Tracer observes successful mutations for diagnostics. Both callbacks
// receive the element involved and a snapshot of the occupied region in FIFO
// order. Tracers are never invoked on error paths and have no effect on ring
// state; snapshotting allocates, so tracers are a debug-only facility.
type Tracer[T any] interface {
	Added(elem T, contents []T)
	Removed(elem T, contents []T)
}

// Ring is a fixed-capacity circular FIFO queue over a caller-owned slice.
//
// head indexes the oldest stored element, tail the next free slot, and count
// is authoritative for full/empty: head == tail means full when
// count == Cap() and empty when count == 0.
type Ring[T any] struct {
	buf    []T // caller-owned backing storage, never reallocated
	head   int // index of the oldest element
	tail   int // index of the next free slot
	count  int // number of stored elements
	copyFn CopyFunc[T]
	tracer Tracer[T]
}

// Option configures a Ring at construction.
type Option[T any] func(*Ring[T])

// WithCopy installs a custom element copy strategy.
func WithCopy[T any](fn CopyFunc[T]) Option[T] {
	return func(r *Ring[T]) { r.copyFn = fn }
}

// WithTracer installs a diagnostic tracer.
func WithTracer[T any](tr Tracer[T]) Option[T] {
	return func(r *Ring[T]) { r.tracer = tr }
}

// Attach binds a new empty ring to the given backing storage. The ring's
// capacity is len(storage). No memory is allocated; the caller keeps
// ownership of storage and is responsible for its lifetime.
//
// Returns ErrNilStorage when storage is nil. An empty non-nil slice is
// accepted: a zero-capacity ring is simultaneously full and empty.
func Attach[T any](storage []T, opts ...Option[T]) (*Ring[T], error) {
	if storage == nil {
		return nil, ErrNilStorage
	}
	r := &Ring[T]{buf: storage}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// IsFull reports whether the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.buf)
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// AddTail appends elem after the newest stored element. Returns ErrFull,
// leaving the ring unchanged, when the ring is at capacity.
//
// Unlike the raw variant, the element is mandatory: there is no
// nil-means-skip convention for typed rings.
func (r *Ring[T]) AddTail(elem T) error {
	if r.IsFull() {
		return ErrFull
	}

	if r.copyFn != nil {
		r.copyFn(&r.buf[r.tail], &elem)
	} else {
		r.buf[r.tail] = elem
	}

	r.tail = (r.tail + 1) % len(r.buf)
	r.count++

	if r.tracer != nil {
		r.tracer.Added(elem, r.Snapshot())
	}
	return nil
}

// RemoveHead removes the oldest stored element. When dst is non-nil the
// element is copied into it (using the copy strategy when installed);
// a nil dst discards the element. Returns ErrEmpty, leaving the ring
// unchanged, when the ring holds no elements.
//
// The vacated slot is reset to the zero value so that pointer-bearing
// element types do not pin their referents.
func (r *Ring[T]) RemoveHead(dst *T) error {
	if r.IsEmpty() {
		return ErrEmpty
	}

	removed := r.buf[r.head]
	if dst != nil {
		if r.copyFn != nil {
			r.copyFn(dst, &r.buf[r.head])
		} else {
			*dst = r.buf[r.head]
		}
	}

	var zero T
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.count--

	if r.tracer != nil {
		r.tracer.Removed(removed, r.Snapshot())
	}
	return nil
}

// Reset discards all stored elements and zeroes the previously occupied
// slots, restoring the ring to its freshly attached state.
func (r *Ring[T]) Reset() {
	var zero T
	for i := 0; i < r.count; i++ {
		r.buf[(r.head+i)%len(r.buf)] = zero
	}
	r.head = 0
	r.tail = 0
	r.count = 0
}
