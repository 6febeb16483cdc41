// Package session directs a run: it owns the stage, the node graph and the
// agents, and advances them in a fixed order every frame.
package session

import (
	"fmt"
	"math"

	"ringjump/internal/agent"
	"ringjump/internal/board"
	"ringjump/internal/core"
	"ringjump/internal/log"
	"ringjump/internal/stage"
	rng "ringjump/pkg/core"
)

// Layout describes a hand-built board used instead of the generator for
// the first stage.
type Layout struct {
	Circles []board.Circle
	Pickups []board.NodeKey
	Target  int
	Start   [2]int
	Theta   [2]float64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithListener subscribes l to gameplay events.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// Session is the single-threaded simulation of one run.
type Session struct {
	cfg       Config
	rng       *rng.RNG
	log       *log.Logger
	listeners []Listener

	clock     float64
	frame     uint64
	stage     *stage.Stage
	agents    []*agent.Agent
	scores    []int
	collected int
	finished  bool

	snap Snapshot
}

// Start begins a session with default tunables.
func Start(mode Mode, seed int64, opts ...Option) *Session {
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Seed = seed
	return New(cfg, opts...)
}

// New builds a session from cfg and generates its first stage.
func New(cfg Config, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(cfg.Seed)
	return s
}

// NewWithLayout starts a session on a hand-built first stage. Later stages
// (solo) come from the generator.
func NewWithLayout(cfg Config, layout Layout, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	s.begin(cfg.Seed)

	g := board.NewGraph(layout.Circles)
	g.Rebuild(0)
	for _, k := range layout.Pickups {
		g.SetPickup(k, true)
	}
	s.stage = &stage.Stage{
		Number:  1,
		Circles: g.Circles(),
		Graph:   g,
		Target:  layout.Target,
		Start:   layout.Start,
	}
	s.spawn(layout.Theta)
	s.logStage()
	s.freeze()
	return s
}

// Name returns the mode name.
func (s *Session) Name() string { return s.cfg.Mode.String() }

// Mode returns the session's mode.
func (s *Session) Mode() Mode { return s.cfg.Mode }

// Config returns the session's configuration.
func (s *Session) Config() Config { return s.cfg }

// Reset discards all state and starts over on a freshly generated first
// stage drawn from seed.
func (s *Session) Reset(seed int64) {
	s.begin(seed)
	s.stage = stage.Build(s.rng, s.cfg.Stage, 1, 0)
	s.spawn([2]float64{0, math.Pi})
	s.logStage()
	s.freeze()
}

func (s *Session) begin(seed int64) {
	s.cfg.Seed = seed
	s.rng = rng.NewRNG(seed)
	s.clock = 0
	s.frame = 0
	s.collected = 0
	s.finished = false
	s.scores = make([]int, s.cfg.Mode.Agents())
}

func (s *Session) spawn(theta [2]float64) {
	n := len(s.stage.Circles)
	speeds := [2]float64{
		s.cfg.Speed + float64(s.stage.Number-1)*s.cfg.SpeedPerStage,
		s.cfg.RivalSpeed,
	}
	s.agents = s.agents[:0]
	for i := 0; i < s.cfg.Mode.Agents(); i++ {
		s.agents = append(s.agents, agent.New(s.cfg.agentConfig(speeds[i]), n, s.stage.Start[i], theta[i]))
	}
}

// Step advances the simulation by dt seconds: clock, graph rebuild, one
// step per agent, then stage or termination transitions. edges[i] is agent
// i's activation edge for this frame. Stepping a finished session is a no-op.
func (s *Session) Step(dt float64, edges []bool) {
	if s.finished {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		panic(fmt.Sprintf("session: invalid step %v", dt))
	}
	if dt > s.cfg.MaxStep {
		dt = s.cfg.MaxStep
	}

	s.clock += dt
	s.frame++
	g := s.stage.Graph
	g.Rebuild(s.clock)

	for i, a := range s.agents {
		if !a.Alive() {
			continue
		}
		edge := i < len(edges) && edges[i]
		s.apply(i, a.Step(dt, g, edge))
	}

	s.resolve()
	s.freeze()
}

func (s *Session) apply(i int, ev agent.Event) {
	base := Event{Agent: i, Stage: s.stage.Number, Time: s.clock, Node: ev.Node}
	if ev.Outcome.Has(agent.Armed) {
		base.Kind = EventArmed
		base.Circle = ev.From
		s.emit(base)
	}
	if ev.Outcome.Has(agent.Jumped) {
		e := base
		e.Kind = EventJump
		e.Circle = ev.To
		s.emit(e)
		s.log.Debugf("agent %d jumped %d -> %d via %+v", i, ev.From, ev.To, ev.Node)
	}
	if ev.Outcome.Has(agent.Collected) {
		s.scores[i] += s.cfg.PickupPoints
		s.collected++
		e := base
		e.Kind = EventPickup
		e.Circle = ev.To
		e.Score = s.scores[i]
		s.emit(e)
	}
	if ev.Outcome.Has(agent.Died) {
		e := base
		e.Kind = EventDeath
		e.Circle = ev.From
		e.Score = s.scores[i]
		s.emit(e)
		s.log.Infof("agent %d died on circle %d at t=%.2f (stage %d, score %d)", i, ev.From, s.clock, s.stage.Number, s.scores[i])
	}
}

func (s *Session) resolve() {
	switch s.cfg.Mode {
	case Duel:
		alive := 0
		for _, a := range s.agents {
			if a.Alive() {
				alive++
			}
		}
		if alive == 0 || s.stage.Graph.Remaining() == 0 {
			s.finish()
		}
	default:
		if !s.agents[0].Alive() {
			s.finish()
			return
		}
		if s.collected >= s.stage.Target {
			s.advance()
		}
	}
}

func (s *Session) advance() {
	next := s.stage.Number + 1
	s.stage = stage.Build(s.rng, s.cfg.Stage, next, s.clock)
	s.collected = 0
	s.spawn([2]float64{0, math.Pi})
	s.logStage()
	s.emit(Event{Kind: EventStage, Agent: -1, Circle: -1, Stage: next, Score: s.scores[0], Time: s.clock})
}

func (s *Session) finish() {
	s.finished = true
	s.log.Infof("session finished at t=%.2f stage %d scores %v", s.clock, s.stage.Number, s.scores)
	s.emit(Event{Kind: EventFinished, Agent: -1, Circle: -1, Stage: s.stage.Number, Time: s.clock})
}

func (s *Session) emit(ev Event) {
	for _, l := range s.listeners {
		l.Notify(ev)
	}
}

func (s *Session) logStage() {
	g := s.stage.Graph
	moving := 0
	for _, c := range s.stage.Circles {
		if c.Moving {
			moving++
		}
	}
	s.log.Infof("stage %d: %d circles (%d moving), %d nodes, %d pickups, target %d",
		s.stage.Number, len(s.stage.Circles), moving, len(g.Live()), g.Pickups(), s.stage.Target)
}

// IsFinished reports whether the run has reached its terminal state.
func (s *Session) IsFinished() bool { return s.finished }

// FinalScores returns a copy of the per-agent scores.
func (s *Session) FinalScores() []int { return append([]int(nil), s.scores...) }

// StageNumber returns the current stage.
func (s *Session) StageNumber() int { return s.stage.Number }

// Time returns the simulation clock.
func (s *Session) Time() float64 { return s.clock }

// Graph exposes the current stage's node graph.
func (s *Session) Graph() *board.Graph { return s.stage.Graph }

// Agent returns agent i.
func (s *Session) Agent(i int) *agent.Agent { return s.agents[i] }

var _ core.Game = (*Session)(nil)

func init() {
	for _, m := range []Mode{Solo, Duel} {
		mode := m
		core.Register(mode.String(), func(cfg map[string]string) core.Game {
			c := FromMap(cfg)
			c.Mode = mode
			return New(c)
		})
	}
}
