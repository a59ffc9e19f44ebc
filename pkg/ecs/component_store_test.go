package ecs

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func collect(s *Store[int]) []uint64 {
	var ids []uint64
	for id := range s.All() {
		ids = append(ids, id)
	}
	return ids
}

func assertOrder(t *testing.T, s *Store[int], want []uint64) {
	t.Helper()
	got := collect(s)
	if len(got) != len(want) {
		t.Fatalf("iteration order mismatch: got %v want %v\n%s", got, want, spew.Sdump(s))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iteration order mismatch: got %v want %v\n%s", got, want, spew.Sdump(s))
		}
	}
}

// physicalOrder reads entity ids straight out of the backing array, by
// index, bypassing the chain entirely — it exposes the swap-remove
// reshuffle that assertOrder's chain walk is designed to hide.
func physicalOrder(s *Store[int]) []uint64 {
	ids := make([]uint64, len(s.items))
	for i := range s.items {
		ids[i] = s.items[i].entityID()
	}
	return ids
}

func assertPhysical(t *testing.T, s *Store[int], want []uint64) {
	t.Helper()
	got := physicalOrder(s)
	if len(got) != len(want) {
		t.Fatalf("physical order mismatch: got %v want %v\n%s", got, want, spew.Sdump(s))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("physical order mismatch: got %v want %v\n%s", got, want, spew.Sdump(s))
		}
	}
}

// Remove the middle entry of three and confirm iteration still visits
// the two survivors in insertion order.
func TestStoreRemoveMiddleOfThree(t *testing.T) {
	s := NewStore[int]()
	s.Push(100, 0)
	s.Push(101, 1)
	s.Push(102, 2)

	s.Remove(1)

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	assertOrder(t, s, []uint64{0, 2})
}

// Mirrors test_adv_component_vector: push six entries, then remove and
// push in the sequence that walks the store through successive
// swap-remove reshuffles — each step confirmed against both the
// physical array layout and the chain's insertion-order iteration.
func TestStoreRemoveMiddleOfSix(t *testing.T) {
	s := NewStore[int]()
	for i := uint64(0); i < 6; i++ {
		s.Push(int(100+i), i)
	}

	// Remove 2 -> physical [0,1,5,3,4], iteration [0,1,3,4,5].
	s.Remove(2)
	if got := s.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
	assertPhysical(t, s, []uint64{0, 1, 5, 3, 4})
	assertOrder(t, s, []uint64{0, 1, 3, 4, 5})

	// Remove 4 -> physical [0,1,5,3], iteration [0,1,3,5].
	s.Remove(4)
	if got := s.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	assertPhysical(t, s, []uint64{0, 1, 5, 3})
	assertOrder(t, s, []uint64{0, 1, 3, 5})

	// Remove 0 -> physical [3,1,5], iteration [1,3,5].
	s.Remove(0)
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	assertPhysical(t, s, []uint64{3, 1, 5})
	assertOrder(t, s, []uint64{1, 3, 5})

	// Push 6 -> physical [3,1,5,6], iteration [1,3,5,6].
	s.Push(106, 6)
	if got := s.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	assertPhysical(t, s, []uint64{3, 1, 5, 6})
	assertOrder(t, s, []uint64{1, 3, 5, 6})
}

func TestStoreRemoveHead(t *testing.T) {
	s := NewStore[int]()
	s.Push(100, 0)
	s.Push(101, 1)
	s.Push(102, 2)

	s.Remove(0)

	assertOrder(t, s, []uint64{1, 2})
}

func TestStoreRemoveTail(t *testing.T) {
	s := NewStore[int]()
	s.Push(100, 0)
	s.Push(101, 1)
	s.Push(102, 2)

	s.Remove(2)

	assertOrder(t, s, []uint64{0, 1})
}

func TestStoreRemoveOnlyEntry(t *testing.T) {
	s := NewStore[int]()
	s.Push(100, 0)
	s.Remove(0)

	if got := s.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	assertOrder(t, s, nil)
}

func TestStoreRemoveUnknownEntityIsNoop(t *testing.T) {
	s := NewStore[int]()
	s.Push(100, 0)
	s.Remove(999)

	if got := s.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestStoreRemoveFromEmptyIsNoop(t *testing.T) {
	s := NewStore[int]()
	s.Remove(0)
	if got := s.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

// Removing every entry one at a time, in varying orders, should always
// leave an empty, iterable store behind it — no panics from a stale
// head/tail pointer into a now-shrunk array.
func TestStoreRemoveAllInRandomishOrder(t *testing.T) {
	s := NewStore[int]()
	for i := uint64(0); i < 8; i++ {
		s.Push(int(i), i)
	}

	order := []uint64{3, 0, 7, 1, 6, 2, 5, 4}
	for _, id := range order {
		s.Remove(id)
	}

	if got := s.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	assertOrder(t, s, nil)
}

func TestStorePushThenIterateMutates(t *testing.T) {
	s := NewStore[int]()
	s.Push(1, 0)
	s.Push(2, 1)

	for _, v := range s.All() {
		*v *= 10
	}

	assertOrder(t, s, []uint64{0, 1})
	var got []int
	for _, v := range s.All() {
		got = append(got, *v)
	}
	if got[0] != 10 || got[1] != 20 {
		t.Fatalf("mutated values = %v, want [10 20]", got)
	}
}
