package ecs

import (
	"sync/atomic"
	"testing"
)

type countingSystem struct {
	BaseSystem
	starts int32
	exits  int32
}

func (s *countingSystem) Start(*Token) { atomic.AddInt32(&s.starts, 1) }
func (s *countingSystem) Exit(*Token)  { atomic.AddInt32(&s.exits, 1) }

func TestDispatcherStartExitFanOut(t *testing.T) {
	res := NewResources()
	a := &countingSystem{}
	b := &countingSystem{}

	d := NewDispatcher().With(a).With(b)
	d.Start(res)
	d.Exit(res)

	if a.starts != 1 || b.starts != 1 {
		t.Fatalf("Start not delivered to every system: a=%d b=%d", a.starts, b.starts)
	}
	if a.exits != 1 || b.exits != 1 {
		t.Fatalf("Exit not delivered to every system: a=%d b=%d", a.exits, b.exits)
	}
}

type verdictSystem struct {
	BaseSystem
	trans Transition
}

func (s *verdictSystem) Update(*Token) Transition { return s.trans }

// Update's tie rule keeps the first non-None verdict in With-registration
// order, regardless of which goroutine finishes first.
func TestDispatcherUpdateKeepsFirstNonNoneInRegistrationOrder(t *testing.T) {
	res := NewResources()
	target := NewState("target")

	d := NewDispatcher().
		With(&verdictSystem{trans: None()}).
		With(&verdictSystem{trans: Push(target)}).
		With(&verdictSystem{trans: Pop()})

	got := d.Update(res)
	if got.Kind() != TransPush {
		t.Fatalf("Update() kind = %v, want TransPush (the first non-None system in registration order)", got.Kind())
	}
	if got.State() != target {
		t.Fatal("Update() did not carry the pushed state through")
	}
}

func TestDispatcherUpdateAllNoneIsNone(t *testing.T) {
	res := NewResources()
	d := NewDispatcher().
		With(&verdictSystem{trans: None()}).
		With(&verdictSystem{trans: None()})

	if got := d.Update(res); got.Kind() != TransNone {
		t.Fatalf("Update() kind = %v, want TransNone", got.Kind())
	}
}
