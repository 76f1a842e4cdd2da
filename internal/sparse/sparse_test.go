package sparse

import "testing"

func TestSparseSetInsertContains(t *testing.T) {
	s := NewSparseSet(16)
	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}

	s.Insert(5)
	s.Insert(5) // duplicate insert is a no-op
	s.Insert(0)
	s.Insert(15)

	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	for _, v := range []uint32{0, 5, 15} {
		if !s.Contains(v) {
			t.Errorf("expected set to contain %d", v)
		}
	}
	if s.Contains(1) {
		t.Error("set should not contain absent member 1")
	}
}

func TestSparseSetContainsOutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Error("Contains must report false for a value beyond capacity, not panic")
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(8)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("removed member should no longer be contained")
	}
	if s.Size() != 2 {
		t.Fatalf("Size() after remove = %d, want 2", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("removing one member should not disturb the others")
	}

	s.Remove(2) // removing an absent member is a no-op
	if s.Size() != 2 {
		t.Fatalf("Size() after no-op remove = %d, want 2", s.Size())
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if !s.IsEmpty() {
		t.Error("Clear should empty the set")
	}
	s.Insert(1)
	if !s.Contains(1) {
		t.Error("set should be reusable after Clear")
	}
}

func TestSparseSetIterVisitsEveryMember(t *testing.T) {
	s := NewSparseSet(8)
	want := map[uint32]bool{1: true, 4: true, 6: true}
	for v := range want {
		s.Insert(v)
	}
	got := map[uint32]bool{}
	s.Iter(func(v uint32) { got[v] = true })
	if len(got) != len(want) {
		t.Fatalf("Iter visited %d members, want %d", len(got), len(want))
	}
	for v := range want {
		if !got[v] {
			t.Errorf("Iter missed member %d", v)
		}
	}
}
