package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlotsBasic(t *testing.T) {
	var s Slots
	if s.Get(3) != 0 {
		t.Error("absent index should read as 0")
	}
	if s.Has(3) {
		t.Error("zero Slots should have nothing materialized")
	}

	s2 := s.With(3, 7)
	if s2.Get(3) != 7 || !s2.Has(3) {
		t.Errorf("With(3, 7).Get(3) = %d", s2.Get(3))
	}
	if s.Has(3) {
		t.Error("With must not mutate the receiver")
	}
	if s2.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s2.Len())
	}
}

func TestSlotsActiveAndHidden(t *testing.T) {
	s := NewSlots(map[int]int{0: 1, 1: 5, 4: 9})

	if diff := cmp.Diff([]int{0, 1}, s.Active(2)); diff != "" {
		t.Errorf("Active(2) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4}, s.Hidden(2)); diff != "" {
		t.Errorf("Hidden(2) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 4}, s.Hidden(1)); diff != "" {
		t.Errorf("Hidden(1) mismatch (-want +got):\n%s", diff)
	}
	if got := s.Active(0); len(got) != 0 {
		t.Errorf("Active(0) = %v, want none", got)
	}
	if got := s.Active(-3); len(got) != 0 {
		t.Errorf("Active(-3) = %v, want none", got)
	}

	// Shrinking and regrowing the range never loses values.
	if s.Get(1) != 5 {
		t.Errorf("hidden value lost: Get(1) = %d", s.Get(1))
	}
}

func TestSlotsSnapshotIsCopy(t *testing.T) {
	src := map[int]int{2: 2}
	s := NewSlots(src)
	src[2] = 99

	snap := s.Snapshot()
	snap[2] = 100
	if s.Get(2) != 2 {
		t.Errorf("Slots aliased an external map: Get(2) = %d", s.Get(2))
	}
	if diff := cmp.Diff(map[int]int{2: 2}, s.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}
