package ecs

import "iter"

// Store is the packed, per-type component container: a flat array of
// wrappers plus head/tail indices into an intrusive insertion-order
// chain. Swap-remove keeps the array dense; the chain keeps iteration
// order equal to insertion order regardless of how the array has been
// reshuffled underneath.
//
// A Store has no locking of its own — access control is the Registry's
// job, via the loan protocol, not the store's.
type Store[C any] struct {
	items []wrapper[C]
	head  uint64
	tail  uint64
}

// NewStore returns an empty store for component type C.
func NewStore[C any]() *Store[C] {
	return &Store[C]{}
}

// Len reports the number of live components. There is no tombstone state:
// len always equals the physical array length.
func (s *Store[C]) Len() int { return len(s.items) }

// Push appends a new component under entityID, at the tail of the
// insertion-order chain. The caller must supply a strictly increasing
// entityID on each call — the store does not check. Iteration always
// follows insertion order; the ids it yields are increasing only when
// that precondition holds.
func (s *Store[C]) Push(c C, entityID uint64) {
	idx := uint64(len(s.items))
	if len(s.items) == 0 {
		s.head = 0
		s.tail = 0
	} else {
		s.items[s.tail].setNext(idx)
		s.tail = idx
	}
	s.items = append(s.items, wrapper[C]{component: c, meta: packMeta(entityID, 0, true)})
}

// Remove deletes the wrapper for entityID, if present, repairing the
// intrusive chain and then swap-removing the physical slot so the array
// stays packed. A missing entityID, or an empty store, is a no-op.
func (s *Store[C]) Remove(entityID uint64) {
	n := len(s.items)
	if n == 0 {
		return
	}

	var prev int64 = -1
	curr := int64(s.head)
	found := false
	endPrev := int64(s.head)
	foundEndPrev := false

	// Fast path: in the common append-then-remove history, the
	// second-to-last physical slot already points at the last one.
	if n >= 2 && s.items[n-2].next() == uint64(n-1) {
		foundEndPrev = true
		endPrev = int64(n - 2)
	}

	idx := int64(s.head)
	for steps := 0; steps < n; steps++ {
		w := &s.items[idx]

		if w.entityID() == entityID {
			found = true
		} else if !found {
			prev = curr
			curr = int64(w.next())
		}

		if w.next() == uint64(n-1) {
			foundEndPrev = true
		} else if !foundEndPrev {
			endPrev = int64(w.next())
		}

		if found && foundEndPrev {
			break
		}
		idx = int64(w.next())
	}

	if !found {
		return
	}

	// The wrapper currently at len-1 is about to be moved into curr's
	// slot by swap-remove; whoever pointed at len-1 must now point at
	// curr instead.
	if foundEndPrev {
		s.items[endPrev].setNext(uint64(curr))
	}

	next := s.items[curr].next()

	if prev >= 0 {
		s.items[prev].setNext(next)
	}

	if uint64(curr) == s.head {
		s.head = next
	}

	if uint64(curr) == s.tail {
		if prev < 0 {
			s.tail = 0
		} else {
			s.tail = uint64(prev)
		}
	}

	// If the logical head or tail happens to be the physically-last slot
	// (the one about to be relocated), it now lives at curr.
	if int(s.head) == n-1 {
		s.head = uint64(curr)
	}
	if int(s.tail) == n-1 {
		s.tail = uint64(curr)
	}

	last := n - 1
	s.items[curr] = s.items[last]
	s.items = s.items[:last]
}

// All returns a lazy, finite sequence over the store's live components
// in insertion order; each range over it walks the chain again from the
// head. Holding a read loan for the
// duration of iteration is the caller's responsibility — a concurrent
// write invalidates any iterator already in flight.
func (s *Store[C]) All() iter.Seq2[uint64, *C] {
	return func(yield func(uint64, *C) bool) {
		n := len(s.items)
		if n == 0 {
			return
		}
		idx := s.head
		for i := 0; i < n; i++ {
			w := &s.items[idx]
			if !yield(w.entityID(), &w.component) {
				return
			}
			idx = w.next()
		}
	}
}
