package sparse

import "testing"

func TestSetInsertAndContains(t *testing.T) {
	s := New(100)
	if s.Contains(5) {
		t.Error("empty set should not contain 5")
	}
	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5)
	if s.Len() != 1 {
		t.Errorf("duplicate insert should not grow len, got %d", s.Len())
	}
}

func TestSetInsertionOrderPreserved(t *testing.T) {
	s := New(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)

	want := []uint32{5, 2, 8}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetClearDoesNotLeaveStaleMembership(t *testing.T) {
	s := New(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not report old members, even with stale sparse[] entries")
	}
	if s.Len() != 0 {
		t.Errorf("cleared set should have len 0, got %d", s.Len())
	}

	s.Insert(3)
	if !s.Contains(3) || s.Contains(5) {
		t.Error("set should only contain newly inserted members after clear")
	}
}

func TestSetIter(t *testing.T) {
	s := New(10)
	s.Insert(7)
	s.Insert(2)

	var collected []uint32
	s.Iter(func(v uint32) { collected = append(collected, v) })
	if len(collected) != 2 || collected[0] != 7 || collected[1] != 2 {
		t.Errorf("got %v, want [7 2]", collected)
	}
}

func TestSetContainsOutOfRangeIsFalse(t *testing.T) {
	s := New(10)
	if s.Contains(100) {
		t.Error("Contains beyond capacity should be false, not panic")
	}
}
