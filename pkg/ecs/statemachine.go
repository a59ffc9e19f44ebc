package ecs

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Machine owns a stack of States and the Resources they share. The top
// of the stack — the highest index — is the only state driven by Update
// on any given step; Start/Pause/Resume/Exit are delivered to whichever
// state the active transition names.
type Machine struct {
	stack     []*State
	resources *Resources
	log       *zap.Logger
	trace     *TraceBuffer
}

// NewMachine returns a Machine seeded with initial as its sole state.
// log may be nil, in which case a no-op logger is used.
func NewMachine(initial *State, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		stack:     []*State{initial},
		resources: NewResources(),
		log:       log,
		trace:     NewTraceBuffer(500),
	}
}

// Resources returns the shared Resources handle, so a caller can
// Register component types before Run starts driving systems.
func (m *Machine) Resources() *Resources { return m.resources }

// Trace returns the machine's bounded transition history.
func (m *Machine) Trace() *TraceBuffer { return m.trace }

func (m *Machine) top() *State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Run drives the machine to completion: it starts the initial state,
// then repeatedly steps until the stack empties. One run_id (a uuid v4)
// is generated for the whole call and threaded through every log line
// and trace entry it produces.
func (m *Machine) Run() {
	runID := uuid.NewString()
	log := m.log.With(zap.String("run_id", runID))

	if top := m.top(); top != nil {
		top.start(m.resources)
	}

	for {
		if m.step(runID, log) {
			break
		}
	}
}

// step performs one update against the current top state and applies
// whatever transition it returns. It reports whether the machine has
// finished (stack empty).
func (m *Machine) step(runID string, log *zap.Logger) (done bool) {
	top := m.top()
	if top == nil {
		return true
	}

	trans := top.update(m.resources)
	depth := len(m.stack)

	m.trace.Append(TraceEntry{
		RunID:     runID,
		StateName: top.Name(),
		Kind:      trans.Kind(),
		Depth:     depth,
	})

	switch trans.Kind() {
	case TransNone:
		log.Debug("transition", zap.String("state", top.Name()), zap.String("kind", "none"), zap.Int("depth", depth))
		return false

	case TransPop:
		top.exit(m.resources)
		m.stack = m.stack[:len(m.stack)-1]
		log.Info("transition", zap.String("state", top.Name()), zap.String("kind", "pop"), zap.Int("depth", len(m.stack)))
		if next := m.top(); next != nil {
			next.resume(m.resources)
			return false
		}
		return true

	case TransPush:
		next := trans.State()
		top.pause(m.resources)
		next.start(m.resources)
		m.stack = append(m.stack, next)
		log.Info("transition", zap.String("state", top.Name()), zap.String("kind", "push"), zap.String("next", next.Name()), zap.Int("depth", len(m.stack)))
		return false

	case TransSwap:
		next := trans.State()
		top.exit(m.resources)
		m.stack = m.stack[:len(m.stack)-1]
		next.start(m.resources)
		m.stack = append(m.stack, next)
		log.Info("transition", zap.String("state", top.Name()), zap.String("kind", "swap"), zap.String("next", next.Name()), zap.Int("depth", len(m.stack)))
		return false

	default:
		return false
	}
}
