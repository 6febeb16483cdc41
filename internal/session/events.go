package session

import "ringjump/internal/board"

// EventKind enumerates what a session reports to its listeners.
type EventKind int

const (
	EventArmed EventKind = iota
	EventJump
	EventPickup
	EventDeath
	EventStage
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventArmed:
		return "armed"
	case EventJump:
		return "jump"
	case EventPickup:
		return "pickup"
	case EventDeath:
		return "death"
	case EventStage:
		return "stage"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification. Agent is -1 for session-wide events.
type Event struct {
	Kind   EventKind
	Agent  int
	Circle int
	Node   board.NodeKey
	Stage  int
	Score  int
	Time   float64
}

// Listener receives events as they happen during Step.
type Listener interface {
	Notify(ev Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev Event)

// Notify calls f(ev).
func (f ListenerFunc) Notify(ev Event) { f(ev) }
