package ecs

import "sync"

// Entity is an opaque identifier allocated by a Register. Callers treat it
// as a handle; only the component store interprets the underlying bits,
// and only to the extent of reading the id back out.
type Entity uint64

// ID returns the raw identifier backing this Entity.
func (e Entity) ID() uint64 { return uint64(e) }

// Register hands out strictly increasing entity ids. It never reuses an
// id and never checks for overflow — the reserved high bits of a component
// wrapper's meta word (see wrapper.go) leave enough headroom for any
// realistic program's entity count.
type Register struct {
	mu     sync.Mutex
	cursor uint64
}

// NewRegister returns a Register whose first allocation is id 0.
func NewRegister() *Register {
	return &Register{}
}

// Reserve advances the cursor by n and returns the half-open interval
// [start, start+n) that was just claimed.
func (r *Register) Reserve(n uint64) (start, end uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start = r.cursor
	r.cursor += n
	return start, r.cursor
}

// Next allocates and returns a single fresh Entity.
func (r *Register) Next() Entity {
	start, _ := r.Reserve(1)
	return Entity(start)
}
