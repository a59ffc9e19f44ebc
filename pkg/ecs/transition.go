package ecs

// TransitionKind identifies which of the four verdicts a Transition
// carries.
type TransitionKind int

const (
	// TransNone leaves the state stack untouched.
	TransNone TransitionKind = iota
	// TransPop exits and removes the top state, resuming whatever is
	// beneath it (or exiting the machine if the stack is now empty).
	TransPop
	// TransPush pauses the top state and pushes a new one above it.
	TransPush
	// TransSwap exits and removes the top state, replacing it with a
	// new one in a single step.
	TransSwap
)

// Transition is the verdict a System's Update returns: one of
// None, Pop, Push(S), or Swap(S).
type Transition struct {
	kind  TransitionKind
	state *State
}

// Kind reports which verdict this Transition carries.
func (t Transition) Kind() TransitionKind { return t.kind }

// State returns the state carried by a Push or Swap transition. It is
// nil for None and Pop.
func (t Transition) State() *State { return t.state }

// None is the default, no-op transition.
func None() Transition { return Transition{kind: TransNone} }

// Pop requests that the current state be exited and removed.
func Pop() Transition { return Transition{kind: TransPop} }

// Push requests that s be started and placed above the current state,
// which is paused but not removed.
func Push(s *State) Transition { return Transition{kind: TransPush, state: s} }

// Swap requests that the current state be exited and replaced by s.
func Swap(s *State) Transition { return Transition{kind: TransSwap, state: s} }
