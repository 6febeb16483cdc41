// Package agent implements the per-agent state machine: orbiting the current
// circle, the double-tap jump gesture and the burnt-circle rule.
package agent

import (
	"fmt"
	"math"

	"ringjump/internal/board"
	"ringjump/internal/geom"
)

const (
	// DefaultTapWindow is how long a first tap stays armed, in seconds.
	DefaultTapWindow = 0.28
	// DefaultSnapTolerance is the widest angular gap to a node that still
	// allows a jump, in radians.
	DefaultSnapTolerance = 14 * math.Pi / 180
)

// Nodes is the view of the board an agent needs while stepping.
type Nodes interface {
	Live() []board.Node
	Claim(key board.NodeKey) bool
}

// Outcome is a bit set describing what happened during one step.
type Outcome uint8

const (
	Armed Outcome = 1 << iota
	Jumped
	Collected
	Died
)

// Has reports whether all bits of o2 are set.
func (o Outcome) Has(o2 Outcome) bool { return o&o2 == o2 }

// Event reports the result of a single step.
type Event struct {
	Outcome Outcome
	From    int
	To      int
	Node    board.NodeKey
}

// Config holds per-agent tunables.
type Config struct {
	Speed         float64 // radians per second
	TapWindow     float64
	SnapTolerance float64
}

// DefaultConfig returns an agent config with the standard gesture timing.
func DefaultConfig(speed float64) Config {
	return Config{Speed: speed, TapWindow: DefaultTapWindow, SnapTolerance: DefaultSnapTolerance}
}

// Agent orbits one circle at a time.
type Agent struct {
	cfg Config

	alive  bool
	circle int
	theta  float64
	burnt  []bool

	tapArmed bool
	tapTimer float64

	nearest      int
	nearestKey   board.NodeKey
	nearestDelta float64
}

// New places an agent on circle start of a board with the given number of
// circles.
func New(cfg Config, circles, start int, theta float64) *Agent {
	if start < 0 || start >= circles {
		panic(fmt.Sprintf("agent: start circle %d out of range [0,%d)", start, circles))
	}
	if cfg.TapWindow <= 0 {
		cfg.TapWindow = DefaultTapWindow
	}
	if cfg.SnapTolerance <= 0 {
		cfg.SnapTolerance = DefaultSnapTolerance
	}
	return &Agent{
		cfg:     cfg,
		alive:   true,
		circle:  start,
		theta:   geom.Wrap(theta),
		burnt:   make([]bool, circles),
		nearest: -1,
	}
}

// Alive reports whether the agent is still in play.
func (a *Agent) Alive() bool { return a.alive }

// Circle returns the current circle index, or -1 once dead.
func (a *Agent) Circle() int { return a.circle }

// Theta returns the angular position on the current circle, in [0, 2π).
func (a *Agent) Theta() float64 { return a.theta }

// Speed returns the angular speed in radians per second.
func (a *Agent) Speed() float64 { return a.cfg.Speed }

// Armed reports whether a first tap is waiting for its second.
func (a *Agent) Armed() bool { return a.tapArmed }

// TapTimer returns the time left in the tap window.
func (a *Agent) TapTimer() float64 { return a.tapTimer }

// Burnt reports whether the agent has already left circle i.
func (a *Agent) Burnt(i int) bool { return i >= 0 && i < len(a.burnt) && a.burnt[i] }

// BurntSet returns a copy of the burnt flags.
func (a *Agent) BurntSet() []bool { return append([]bool(nil), a.burnt...) }

// Nearest returns the closest node on the current circle as of the last
// step and its signed angular offset from the agent.
func (a *Agent) Nearest() (board.NodeKey, float64, bool) {
	if a.nearest < 0 {
		return board.NodeKey{}, 0, false
	}
	return a.nearestKey, a.nearestDelta, true
}

// Kill takes the agent out of play.
func (a *Agent) Kill() {
	a.alive = false
	a.circle = -1
	a.tapArmed = false
	a.tapTimer = 0
	a.nearest = -1
}

// Step advances the agent by dt seconds against the current live nodes.
// activate is the debounced press edge for this frame. A dead agent does
// nothing.
func (a *Agent) Step(dt float64, nodes Nodes, activate bool) Event {
	ev := Event{From: a.circle, To: a.circle}
	if !a.alive {
		return ev
	}
	if a.circle < 0 {
		panic("agent: live agent has no circle")
	}

	a.theta = geom.Wrap(a.theta + a.cfg.Speed*dt)
	live := nodes.Live()
	a.track(live)

	if a.tapArmed {
		a.tapTimer -= dt
		if a.tapTimer <= 0 {
			a.tapArmed = false
			a.tapTimer = 0
		}
	}

	if !activate {
		return ev
	}
	if !a.tapArmed {
		a.tapArmed = true
		a.tapTimer = a.cfg.TapWindow
		ev.Outcome |= Armed
		return ev
	}
	return a.jump(live, nodes, ev)
}

func (a *Agent) track(live []board.Node) {
	a.nearest = -1
	best := math.Inf(1)
	for i, n := range live {
		ang, ok := n.AngleOn(a.circle)
		if !ok {
			continue
		}
		d := geom.Delta(a.theta, ang)
		if math.Abs(d) < best {
			best = math.Abs(d)
			a.nearest = i
			a.nearestKey = n.Key
			a.nearestDelta = d
		}
	}
}

func (a *Agent) jump(live []board.Node, nodes Nodes, ev Event) Event {
	if a.circle < 0 {
		panic("agent: jump attempted without a circle")
	}
	a.tapArmed = false
	a.tapTimer = 0

	if a.nearest < 0 || math.Abs(a.nearestDelta) > a.cfg.SnapTolerance {
		a.Kill()
		ev.Outcome |= Died
		ev.To = -1
		return ev
	}
	node := live[a.nearest]
	target := node.Other(a.circle)
	ev.Node = node.Key
	if a.Burnt(target) {
		a.Kill()
		ev.Outcome |= Died
		ev.To = -1
		return ev
	}

	ang, _ := node.AngleOn(target)
	a.burnt[a.circle] = true
	a.circle = target
	a.theta = geom.Wrap(ang)
	ev.To = target
	ev.Outcome |= Jumped
	if node.Open() && nodes.Claim(node.Key) {
		ev.Outcome |= Collected
	}
	a.track(nodes.Live())
	return ev
}
