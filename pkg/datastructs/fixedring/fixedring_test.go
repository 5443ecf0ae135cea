package fixedring

import (
	"errors"
	"testing"
)

// =============================================================================
// Method: Attach()
// =============================================================================

func TestRing_Attach(t *testing.T) {
	t.Run("nil_storage", func(t *testing.T) {
		r, err := Attach[int](nil)
		if r != nil {
			t.Error("Attach(nil) returned a ring")
		}
		if !errors.Is(err, ErrNilStorage) {
			t.Errorf("Attach(nil) error = %v; want ErrNilStorage", err)
		}
	})

	t.Run("fresh_state", func(t *testing.T) {
		r, err := Attach(make([]int, 8))
		if err != nil {
			t.Fatalf("Attach() error = %v", err)
		}
		if r.Cap() != 8 {
			t.Errorf("Cap() = %d; want 8", r.Cap())
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d; want 0", r.Len())
		}
		if !r.IsEmpty() || r.IsFull() {
			t.Error("fresh ring should be empty and not full")
		}
	})

	t.Run("no_allocation_binds_caller_storage", func(t *testing.T) {
		storage := make([]int, 4)
		r, _ := Attach(storage)
		if err := r.AddTail(42); err != nil {
			t.Fatalf("AddTail() error = %v", err)
		}
		// The element must land in the caller's slice, not a copy.
		if storage[0] != 42 {
			t.Errorf("storage[0] = %d; want 42", storage[0])
		}
	})

	t.Run("zero_capacity", func(t *testing.T) {
		r, err := Attach([]int{})
		if err != nil {
			t.Fatalf("Attach(empty) error = %v", err)
		}
		// A zero-capacity ring is full and empty at once.
		if !r.IsFull() || !r.IsEmpty() {
			t.Error("zero-capacity ring should be both full and empty")
		}
		if err := r.AddTail(1); !errors.Is(err, ErrFull) {
			t.Errorf("AddTail() error = %v; want ErrFull", err)
		}
		if err := r.RemoveHead(nil); !errors.Is(err, ErrEmpty) {
			t.Errorf("RemoveHead() error = %v; want ErrEmpty", err)
		}
	})
}

// =============================================================================
// Method: AddTail() / RemoveHead()
// =============================================================================

func TestRing_FIFOOrder(t *testing.T) {
	r, _ := Attach(make([]string, 4))

	for _, s := range []string{"a", "b", "c"} {
		if err := r.AddTail(s); err != nil {
			t.Fatalf("AddTail(%q) error = %v", s, err)
		}
	}

	for _, want := range []string{"a", "b", "c"} {
		var got string
		if err := r.RemoveHead(&got); err != nil {
			t.Fatalf("RemoveHead() error = %v", err)
		}
		if got != want {
			t.Errorf("RemoveHead() = %q; want %q", got, want)
		}
	}

	if !r.IsEmpty() {
		t.Error("ring should be empty after draining")
	}
}

func TestRing_AddTail_Full(t *testing.T) {
	r, _ := Attach(make([]int, 2))
	_ = r.AddTail(1)
	_ = r.AddTail(2)

	err := r.AddTail(3)
	if !errors.Is(err, ErrFull) {
		t.Errorf("AddTail(full) error = %v; want ErrFull", err)
	}

	// State must be untouched by the failed add.
	if r.Len() != 2 {
		t.Errorf("Len() = %d; want 2", r.Len())
	}
	got := r.Snapshot()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Snapshot() = %v; want [1 2]", got)
	}
}

func TestRing_RemoveHead_Empty(t *testing.T) {
	r, _ := Attach(make([]int, 2))

	var dst int
	err := r.RemoveHead(&dst)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("RemoveHead(empty) error = %v; want ErrEmpty", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d; want 0", r.Len())
	}
}

func TestRing_RemoveHead_Discard(t *testing.T) {
	r, _ := Attach(make([]int, 2))
	_ = r.AddTail(7)
	_ = r.AddTail(8)

	// nil destination drops the element but still advances the ring.
	if err := r.RemoveHead(nil); err != nil {
		t.Fatalf("RemoveHead(nil) error = %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d; want 1", r.Len())
	}

	var got int
	_ = r.RemoveHead(&got)
	if got != 8 {
		t.Errorf("RemoveHead() = %d; want 8", got)
	}
}

func TestRing_RemoveHead_ZeroesSlot(t *testing.T) {
	storage := make([]*int, 2)
	r, _ := Attach(storage)

	v := 5
	_ = r.AddTail(&v)
	if err := r.RemoveHead(nil); err != nil {
		t.Fatalf("RemoveHead() error = %v", err)
	}
	// The vacated slot must not pin the element.
	if storage[0] != nil {
		t.Error("vacated slot still references the removed element")
	}
}

func TestRing_Wraparound(t *testing.T) {
	// Fill to capacity, remove one, add one: the new element wraps from
	// index 7 to index 0 and FIFO order must hold across the boundary.
	r, _ := Attach(make([]int, 8))

	for i := 1; i <= 8; i++ {
		if err := r.AddTail(i); err != nil {
			t.Fatalf("AddTail(%d) error = %v", i, err)
		}
	}
	if err := r.RemoveHead(nil); err != nil {
		t.Fatalf("RemoveHead() error = %v", err)
	}
	if err := r.AddTail(90); err != nil {
		t.Fatalf("AddTail(90) after wrap error = %v", err)
	}

	want := []int{2, 3, 4, 5, 6, 7, 8, 90}
	for i, w := range want {
		var got int
		if err := r.RemoveHead(&got); err != nil {
			t.Fatalf("RemoveHead() #%d error = %v", i, err)
		}
		if got != w {
			t.Errorf("RemoveHead() #%d = %d; want %d", i, got, w)
		}
	}
}

// =============================================================================
// End-to-end scenario: capacity 8, int elements
// =============================================================================

func TestRing_EndToEnd(t *testing.T) {
	r, _ := Attach(make([]int, 8))

	for i := 1; i <= 8; i++ {
		if err := r.AddTail(i); err != nil {
			t.Fatalf("AddTail(%d) error = %v", i, err)
		}
	}
	if !r.IsFull() {
		t.Error("ring should be full after 8 adds")
	}
	if err := r.AddTail(9); !errors.Is(err, ErrFull) {
		t.Errorf("AddTail(9) error = %v; want ErrFull", err)
	}

	var got int
	if err := r.RemoveHead(&got); err != nil || got != 1 {
		t.Fatalf("RemoveHead() = %d, %v; want 1, nil", got, err)
	}
	if err := r.AddTail(90); err != nil {
		t.Fatalf("AddTail(90) error = %v", err)
	}

	want := []int{2, 3, 4, 5, 6, 7, 8, 90}
	snap := r.Snapshot()
	if len(snap) != len(want) {
		t.Fatalf("Snapshot() len = %d; want %d", len(snap), len(want))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Snapshot()[%d] = %d; want %d", i, snap[i], want[i])
		}
	}

	for i := range want {
		if err := r.RemoveHead(&got); err != nil {
			t.Fatalf("RemoveHead() #%d error = %v", i, err)
		}
		if got != want[i] {
			t.Errorf("RemoveHead() #%d = %d; want %d", i, got, want[i])
		}
	}
	if err := r.RemoveHead(&got); !errors.Is(err, ErrEmpty) {
		t.Errorf("RemoveHead(drained) error = %v; want ErrEmpty", err)
	}
}

// =============================================================================
// State checks
// =============================================================================

func TestRing_StateChecks(t *testing.T) {
	r, _ := Attach(make([]int, 4))

	if !r.IsEmpty() || r.IsFull() {
		t.Error("fresh ring should be empty, not full")
	}

	_ = r.AddTail(1)
	if r.IsEmpty() || r.IsFull() {
		t.Error("partial ring should be neither empty nor full")
	}

	// Queries are idempotent without intervening mutation.
	for i := 0; i < 3; i++ {
		if r.IsEmpty() || r.IsFull() || r.Len() != 1 {
			t.Fatalf("query #%d changed its answer", i)
		}
	}

	for i := 2; i <= 4; i++ {
		_ = r.AddTail(i)
	}
	if !r.IsFull() || r.IsEmpty() {
		t.Error("filled ring should be full, not empty")
	}

	r.Reset()
	if !r.IsEmpty() || r.Len() != 0 {
		t.Error("reset ring should be empty")
	}
	if err := r.AddTail(10); err != nil {
		t.Errorf("AddTail() after Reset error = %v", err)
	}
}

func TestRing_CountBounds(t *testing.T) {
	// Len never exceeds Cap and never goes negative under mixed traffic.
	r, _ := Attach(make([]int, 3))
	ops := []struct {
		add bool
		val int
	}{
		{true, 1}, {true, 2}, {true, 3}, {true, 4}, // 4th add fails
		{false, 0}, {false, 0}, {false, 0}, {false, 0}, // 4th remove fails
		{true, 5}, {false, 0},
	}
	for i, op := range ops {
		if op.add {
			_ = r.AddTail(op.val)
		} else {
			_ = r.RemoveHead(nil)
		}
		if r.Len() < 0 || r.Len() > r.Cap() {
			t.Fatalf("op #%d: Len() = %d out of [0, %d]", i, r.Len(), r.Cap())
		}
	}
}

// =============================================================================
// Custom copy hook
// =============================================================================

type note struct {
	id   int
	text string
}

func TestRing_WithCopy(t *testing.T) {
	copies := 0
	truncate := func(dst *note, src *note) {
		copies++
		dst.id = src.id
		if len(src.text) > 4 {
			dst.text = src.text[:4]
		} else {
			dst.text = src.text
		}
	}

	r, err := Attach(make([]note, 2), WithCopy(truncate))
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	if err := r.AddTail(note{id: 1, text: "abcdefgh"}); err != nil {
		t.Fatalf("AddTail() error = %v", err)
	}
	if copies != 1 {
		t.Errorf("copy hook invoked %d times on add; want 1", copies)
	}

	var got note
	if err := r.RemoveHead(&got); err != nil {
		t.Fatalf("RemoveHead() error = %v", err)
	}
	if copies != 2 {
		t.Errorf("copy hook invoked %d times total; want 2", copies)
	}
	// The hook's effect, not a plain assignment, must be what comes out.
	if got.text != "abcd" {
		t.Errorf("removed text = %q; want %q", got.text, "abcd")
	}

	// Discarding must not invoke the hook.
	_ = r.AddTail(note{id: 2, text: "xy"})
	copies = 0
	if err := r.RemoveHead(nil); err != nil {
		t.Fatalf("RemoveHead(nil) error = %v", err)
	}
	if copies != 0 {
		t.Errorf("copy hook invoked %d times on discard; want 0", copies)
	}
}

// =============================================================================
// Method: Do() / Snapshot()
// =============================================================================

func TestRing_Do(t *testing.T) {
	r, _ := Attach(make([]int, 4))
	for i := 1; i <= 3; i++ {
		_ = r.AddTail(i * 10)
	}

	t.Run("in_order", func(t *testing.T) {
		var seen []int
		r.Do(func(i int, elem int) bool {
			if i != len(seen) {
				t.Errorf("index %d out of order", i)
			}
			seen = append(seen, elem)
			return true
		})
		want := []int{10, 20, 30}
		if len(seen) != len(want) {
			t.Fatalf("visited %d elements; want %d", len(seen), len(want))
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Errorf("seen[%d] = %d; want %d", i, seen[i], want[i])
			}
		}
	})

	t.Run("early_stop", func(t *testing.T) {
		visits := 0
		r.Do(func(int, int) bool {
			visits++
			return false
		})
		if visits != 1 {
			t.Errorf("visited %d elements after stop; want 1", visits)
		}
	})

	t.Run("does_not_mutate", func(t *testing.T) {
		r.Do(func(int, int) bool { return true })
		if r.Len() != 3 {
			t.Errorf("Len() = %d after Do; want 3", r.Len())
		}
	})

	t.Run("snapshot_empty", func(t *testing.T) {
		empty, _ := Attach(make([]int, 2))
		if empty.Snapshot() != nil {
			t.Error("Snapshot() of empty ring should be nil")
		}
	})
}
