package term

import "github.com/gdamore/tcell/v2"

// Action is a host command decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionActivate1
	ActionActivate2
	ActionPause
	ActionStep
	ActionReset
	ActionReseed
	ActionMute
	ActionQuit
)

// ActionFor maps a key (and its rune for KeyRune) to an action. Player one
// uses space, player two uses enter.
func ActionFor(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionActivate2
	case tcell.KeyRune:
	default:
		return ActionNone
	}
	switch r {
	case ' ':
		return ActionActivate1
	case 'p', 'P':
		return ActionPause
	case 'n', 'N':
		return ActionStep
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionReseed
	case 'm', 'M':
		return ActionMute
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Edges latches activation presses between simulation ticks so that a tap
// arriving between two frames is delivered exactly once.
type Edges struct {
	pending []bool
	out     []bool
}

// NewEdges creates a latch for n agents.
func NewEdges(n int) *Edges {
	return &Edges{pending: make([]bool, n), out: make([]bool, n)}
}

// Press records an activation for agent i.
func (e *Edges) Press(i int) {
	if i >= 0 && i < len(e.pending) {
		e.pending[i] = true
	}
}

// Take returns the latched edges and clears them. The returned slice is
// reused by the next call.
func (e *Edges) Take() []bool {
	copy(e.out, e.pending)
	clear(e.pending)
	return e.out
}
