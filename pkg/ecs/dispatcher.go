package ecs

import "golang.org/x/sync/errgroup"

// Dispatcher owns one state's systems and fans each lifecycle call out
// across them in parallel, using errgroup for the fan-out; each system
// gets its own Token, scoped to exactly one call.
type Dispatcher struct {
	systems []System
}

// NewDispatcher returns a dispatcher with no systems.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// With appends a system. Order is preserved and is the reduction order
// Update uses to break ties.
func (d *Dispatcher) With(s System) *Dispatcher {
	d.systems = append(d.systems, s)
	return d
}

// fanOut runs call against every system concurrently, each with its own
// freshly scoped token, and waits for all of them to finish.
func (d *Dispatcher) fanOut(res *Resources, call func(System, *Token)) {
	var g errgroup.Group
	for _, sys := range d.systems {
		sys := sys
		g.Go(func() error {
			tok := res.Token()
			defer tok.Close()
			call(sys, tok)
			return nil
		})
	}
	_ = g.Wait()
}

// Start fans Start out across every owned system.
func (d *Dispatcher) Start(res *Resources) {
	d.fanOut(res, func(s System, tok *Token) { s.Start(tok) })
}

// Pause fans Pause out across every owned system.
func (d *Dispatcher) Pause(res *Resources) {
	d.fanOut(res, func(s System, tok *Token) { s.Pause(tok) })
}

// Resume fans Resume out across every owned system.
func (d *Dispatcher) Resume(res *Resources) {
	d.fanOut(res, func(s System, tok *Token) { s.Resume(tok) })
}

// Exit fans Exit out across every owned system.
func (d *Dispatcher) Exit(res *Resources) {
	d.fanOut(res, func(s System, tok *Token) { s.Exit(tok) })
}

// Update fans Update out across every owned system and reduces their
// verdicts.
//
// Tie rule: each system's transition is written into a slot indexed by
// its position in With-registration order, not by goroutine completion
// order, so the fold below is
// deterministic regardless of how the runtime schedules the fan-out. The
// reduction keeps the first non-None verdict in that order; if every
// system returns None, the result is None.
func (d *Dispatcher) Update(res *Resources) Transition {
	n := len(d.systems)
	results := make([]Transition, n)

	var g errgroup.Group
	for i, sys := range d.systems {
		i, sys := i, sys
		g.Go(func() error {
			tok := res.Token()
			defer tok.Close()
			results[i] = sys.Update(tok)
			return nil
		})
	}
	_ = g.Wait()

	for _, t := range results {
		if t.Kind() != TransNone {
			return t
		}
	}
	return None()
}
