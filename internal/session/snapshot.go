package session

import (
	"math"
	"slices"
	"strconv"

	"github.com/golang/geo/r2"

	"ringjump/internal/board"
	"ringjump/internal/core"
	"ringjump/internal/geom"
	"ringjump/internal/stage"
)

// CircleView is a circle as it stands at the snapshot time.
type CircleView struct {
	Center r2.Point
	Radius float64
	Moving bool
	// BurntBy[i] is true when agent i has left this circle.
	BurntBy []bool
}

// AgentView is the renderable state of one agent.
type AgentView struct {
	Alive    bool
	Circle   int
	Theta    float64
	Pos      r2.Point
	Speed    float64
	Armed    bool
	TapTimer float64
	Score    int

	HasNearest   bool
	Nearest      board.NodeKey
	NearestDelta float64
}

// Snapshot is a frozen copy of the session produced at the end of Step.
// Nothing in it aliases live session state.
type Snapshot struct {
	Mode   Mode
	Seed   int64
	Frame  uint64
	Time   float64
	Width  float64
	Height float64

	Stage     int
	Target    int
	Collected int
	Remaining int

	Circles []CircleView
	Nodes   []board.Node
	Agents  []AgentView
	Scores  []int

	Finished bool
}

// Snapshot returns a copy of the view frozen at the end of the last Step
// or Reset.
func (s *Session) Snapshot() Snapshot { return s.snap.Clone() }

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Nodes = slices.Clone(s.Nodes)
	out.Agents = slices.Clone(s.Agents)
	out.Scores = slices.Clone(s.Scores)
	out.Circles = make([]CircleView, len(s.Circles))
	for i, c := range s.Circles {
		c.BurntBy = slices.Clone(c.BurntBy)
		out.Circles[i] = c
	}
	return out
}

func (s *Session) freeze() {
	g := s.stage.Graph
	snap := Snapshot{
		Mode:      s.cfg.Mode,
		Seed:      s.cfg.Seed,
		Frame:     s.frame,
		Time:      s.clock,
		Width:     s.cfg.Stage.Width,
		Height:    s.cfg.Stage.Height,
		Stage:     s.stage.Number,
		Target:    s.stage.Target,
		Collected: s.collected,
		Remaining: g.Remaining(),
		Nodes:     slices.Clone(g.Live()),
		Scores:    slices.Clone(s.scores),
		Finished:  s.finished,
	}

	snap.Circles = make([]CircleView, len(s.stage.Circles))
	for i, c := range s.stage.Circles {
		view := CircleView{
			Center:  c.CenterAt(s.clock),
			Radius:  c.Radius,
			Moving:  c.Moving,
			BurntBy: make([]bool, len(s.agents)),
		}
		for ai, a := range s.agents {
			view.BurntBy[ai] = a.Burnt(i)
		}
		snap.Circles[i] = view
	}

	snap.Agents = make([]AgentView, len(s.agents))
	for i, a := range s.agents {
		view := AgentView{
			Alive:    a.Alive(),
			Circle:   a.Circle(),
			Theta:    a.Theta(),
			Speed:    a.Speed(),
			Armed:    a.Armed(),
			TapTimer: a.TapTimer(),
			Score:    s.scores[i],
		}
		if a.Alive() {
			c := s.stage.Circles[a.Circle()]
			view.Pos = geom.PointAt(c.CenterAt(s.clock), c.Radius, a.Theta())
			view.Nearest, view.NearestDelta, view.HasNearest = a.Nearest()
		}
		snap.Agents[i] = view
	}
	s.snap = snap
}

// Parameters exposes the session tunables for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.cfg.Stage.Params
	n := s.stage.Number
	speeds := make([]core.Parameter, 0, len(s.agents))
	for i, a := range s.agents {
		speeds = append(speeds, floatParam("speed_"+strconv.Itoa(i+1), "Agent "+strconv.Itoa(i+1)+" speed", a.Speed()))
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Session",
				Params: []core.Parameter{
					{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: s.cfg.Mode.String()},
					int64Param("seed", "Seed", s.cfg.Seed),
					intParam("stage", "Stage", n),
					intParam("target", "Target", s.stage.Target),
					intParam("pickups_left", "Pickups left", s.stage.Graph.Remaining()),
				},
			},
			{
				Name: "Agents",
				Params: append(speeds,
					floatParam("tap_window", "Tap window (s)", s.cfg.TapWindow),
					floatParam("snap_deg", "Snap tolerance (deg)", s.cfg.SnapTolerance*180/math.Pi),
				),
			},
			{
				Name: "Board",
				Params: []core.Parameter{
					intParam("circles", "Circles", len(s.stage.Circles)),
					floatParam("moving_fraction", "Moving fraction", stage.MovingFraction(p, n)),
					floatParam("amplitude", "Amplitude", stage.Amplitude(p, n)),
					floatParam("frequency", "Frequency (Hz)", stage.Frequency(p, n)),
					intParam("nodes", "Live nodes", len(s.stage.Graph.Live())),
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}
