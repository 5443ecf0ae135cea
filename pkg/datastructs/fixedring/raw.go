package fixedring

import (
	"github.com/pkg/errors"
)

// RawCopyFunc copies one element-sized region into another in place of the
// default byte copy. dst and src are exactly ElemSize bytes long.
type RawCopyFunc func(dst, src []byte)

// RawTracer observes successful mutations of a Raw ring for diagnostics.
// Both callbacks receive the element involved and copies of the occupied
// slots in FIFO order. Never invoked on error paths.
type RawTracer interface {
	Added(elem []byte, contents [][]byte)
	Removed(elem []byte, contents [][]byte)
}

// Raw is a fixed-capacity circular FIFO queue of opaque fixed-size elements
// over a caller-owned byte region. Element i occupies
// buf[i*elemSize : (i+1)*elemSize].
//
// It exists for callers that need the untyped storage/capacity/element-size
// contract, including its byte-exact details: removal zero-fills the vacated
// slot, and adding a nil element is a silent no-op.
type Raw struct {
	buf      []byte // caller-owned region, at least capacity*elemSize bytes
	capacity int
	elemSize int
	head     int
	tail     int
	count    int
	copyFn   RawCopyFunc
	tracer   RawTracer
}

// RawOption configures a Raw ring at construction.
type RawOption func(*Raw)

// WithRawCopy installs a custom element copy strategy.
func WithRawCopy(fn RawCopyFunc) RawOption {
	return func(r *Raw) { r.copyFn = fn }
}

// WithRawTracer installs a diagnostic tracer.
func WithRawTracer(tr RawTracer) RawOption {
	return func(r *Raw) { r.tracer = tr }
}

// NewRaw binds a new empty raw ring to buf, which the caller owns and must
// keep alive. buf must hold at least capacity*elemSize bytes; extra bytes at
// the end are ignored. No memory is allocated.
//
// Returns ErrNilStorage when buf is nil, ErrElemSize when elemSize is not
// positive, and ErrShortStorage when capacity is negative or buf is shorter
// than capacity*elemSize.
func NewRaw(buf []byte, capacity, elemSize int, opts ...RawOption) (*Raw, error) {
	if buf == nil {
		return nil, ErrNilStorage
	}
	if elemSize <= 0 {
		return nil, errors.Wrapf(ErrElemSize, "element size %d", elemSize)
	}
	if capacity < 0 {
		return nil, errors.Wrapf(ErrShortStorage, "negative capacity %d", capacity)
	}
	if need := capacity * elemSize; len(buf) < need {
		return nil, errors.Wrapf(ErrShortStorage, "have %d bytes, need %d", len(buf), need)
	}

	r := &Raw{
		buf:      buf,
		capacity: capacity,
		elemSize: elemSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Full reports whether the ring is at capacity.
func (r *Raw) Full() bool {
	return r.count == r.capacity
}

// Empty reports whether the ring holds no elements.
func (r *Raw) Empty() bool {
	return r.count == 0
}

// Len returns the number of stored elements.
func (r *Raw) Len() int {
	return r.count
}

// Cap returns the ring capacity in elements.
func (r *Raw) Cap() int {
	return r.capacity
}

// ElemSize returns the fixed element size in bytes.
func (r *Raw) ElemSize() int {
	return r.elemSize
}

// slot returns the storage for element index idx as a full slice expression,
// so writes through it cannot run past the slot boundary.
func (r *Raw) slot(idx int) []byte {
	off := idx * r.elemSize
	return r.buf[off : off+r.elemSize : off+r.elemSize]
}

// Add copies the element in src into the slot after the newest stored
// element. src must be exactly ElemSize bytes; a mismatch fails with
// ErrElemSize. Returns ErrFull, leaving the ring unchanged, when the ring is
// at capacity.
//
// A nil src is a silent success that modifies nothing, so callers can
// attempt an enqueue without branching on element presence; callers wanting
// strictness should use Ring[T].
func (r *Raw) Add(src []byte) error {
	if src == nil {
		return nil
	}
	if r.Full() {
		return ErrFull
	}
	if len(src) != r.elemSize {
		return errors.Wrapf(ErrElemSize, "add: got %d bytes, want %d", len(src), r.elemSize)
	}

	dst := r.slot(r.tail)
	if r.copyFn != nil {
		r.copyFn(dst, src)
	} else {
		copy(dst, src)
	}

	r.tail = (r.tail + 1) % r.capacity
	r.count++

	if r.tracer != nil {
		r.tracer.Added(src, r.Snapshot())
	}
	return nil
}

// Remove removes the oldest stored element. When dst is non-nil the element
// is copied into it, and dst must be exactly ElemSize bytes; a nil dst
// discards the element. The vacated slot is zero-filled either way. Returns
// ErrEmpty, leaving the ring unchanged, when the ring holds no elements.
func (r *Raw) Remove(dst []byte) error {
	if r.Empty() {
		return ErrEmpty
	}
	if dst != nil && len(dst) != r.elemSize {
		return errors.Wrapf(ErrElemSize, "remove: got %d bytes, want %d", len(dst), r.elemSize)
	}

	src := r.slot(r.head)
	if dst != nil {
		if r.copyFn != nil {
			r.copyFn(dst, src)
		} else {
			copy(dst, src)
		}
	}

	var removed []byte
	if r.tracer != nil {
		removed = make([]byte, r.elemSize)
		copy(removed, src)
	}

	for i := range src {
		src[i] = 0
	}

	r.head = (r.head + 1) % r.capacity
	r.count--

	if r.tracer != nil {
		r.tracer.Removed(removed, r.Snapshot())
	}
	return nil
}

// Reset discards all stored elements, zero-fills the previously occupied
// slots, and restores the ring to its freshly constructed state.
func (r *Raw) Reset() {
	for i := 0; i < r.count; i++ {
		s := r.slot((r.head + i) % r.capacity)
		for j := range s {
			s[j] = 0
		}
	}
	r.head = 0
	r.tail = 0
	r.count = 0
}
