package ecs

// State is one entry on a StateMachine's stack: a named bundle of
// systems driven by a single Dispatcher. States are built once with
// With and then treated as immutable by the machine that runs them.
type State struct {
	name       string
	dispatcher *Dispatcher
}

// NewState returns an empty, named state. name is used only for
// diagnostics (trace entries, log fields) — it never affects dispatch.
func NewState(name string) *State {
	return &State{name: name, dispatcher: NewDispatcher()}
}

// With registers a system against this state's dispatcher, in the
// order Update will use to break ties. Returns the receiver for
// chaining.
func (s *State) With(sys System) *State {
	s.dispatcher.With(sys)
	return s
}

// Name reports the diagnostic name given to NewState.
func (s *State) Name() string { return s.name }

func (s *State) start(res *Resources)          { s.dispatcher.Start(res) }
func (s *State) update(res *Resources) Transition { return s.dispatcher.Update(res) }
func (s *State) pause(res *Resources)          { s.dispatcher.Pause(res) }
func (s *State) resume(res *Resources)         { s.dispatcher.Resume(res) }
func (s *State) exit(res *Resources)           { s.dispatcher.Exit(res) }
