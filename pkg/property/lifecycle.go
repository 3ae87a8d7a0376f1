package property

import "fmt"

// Phase is the initialization phase of a Manager.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseInitializing
	PhaseInitialized
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitializing:
		return "initializing"
	case PhaseInitialized:
		return "initialized"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

type event string

const (
	eventBegin    event = "begin"
	eventComplete event = "complete"
	eventAbort    event = "abort"
)

// transitions is indexed by [from][event].
var transitions = map[Phase]map[event]Phase{
	PhaseUninitialized: {
		eventBegin: PhaseInitializing,
	},
	PhaseInitializing: {
		eventComplete: PhaseInitialized,
		eventAbort:    PhaseUninitialized,
	},
}

// TransitionError reports an event fired in a phase that has no
// transition for it.
type TransitionError struct {
	Phase Phase
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition from phase %q for event %q", e.Phase, e.Event)
}

type lifecycle struct {
	current Phase
}

func (l *lifecycle) fire(e event) (from, to Phase, err error) {
	from = l.current
	to, ok := transitions[from][e]
	if !ok {
		return from, from, &TransitionError{Phase: from, Event: string(e)}
	}
	l.current = to
	return from, to, nil
}
