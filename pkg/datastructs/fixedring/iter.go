package fixedring

// Do calls fn for each stored element in FIFO order, oldest first, passing
// the element's position within the occupied region (0 .. Len()-1). It
// stops early if fn returns false.
func (r *Ring[T]) Do(fn func(i int, elem T) bool) {
	for i := 0; i < r.count; i++ {
		if !fn(i, r.buf[(r.head+i)%len(r.buf)]) {
			return
		}
	}
}

// Snapshot returns a copy of the occupied region in FIFO order, or nil when
// the ring is empty.
// Warning: this allocates; it is meant for diagnostics, not the data path.
func (r *Ring[T]) Snapshot() []T {
	if r.count == 0 {
		return nil
	}
	out := make([]T, 0, r.count)
	r.Do(func(_ int, elem T) bool {
		out = append(out, elem)
		return true
	})
	return out
}

// Do calls fn for each stored element in FIFO order, oldest first. The
// yielded slice aliases the backing storage and must be treated as
// read-only. It stops early if fn returns false.
func (r *Raw) Do(fn func(i int, elem []byte) bool) {
	for i := 0; i < r.count; i++ {
		if !fn(i, r.slot((r.head+i)%r.capacity)) {
			return
		}
	}
}

// Snapshot returns copies of the occupied slots in FIFO order, or nil when
// the ring is empty.
// Warning: this allocates; it is meant for diagnostics, not the data path.
func (r *Raw) Snapshot() [][]byte {
	if r.count == 0 {
		return nil
	}
	out := make([][]byte, 0, r.count)
	r.Do(func(_ int, elem []byte) bool {
		cp := make([]byte, len(elem))
		copy(cp, elem)
		out = append(out, cp)
		return true
	})
	return out
}
