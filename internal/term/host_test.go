package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"ringjump/internal/board"
	"ringjump/internal/session"
)

func TestActionFor(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyRune, ' ', ActionActivate1},
		{tcell.KeyEnter, 0, ActionActivate2},
		{tcell.KeyRune, 'p', ActionPause},
		{tcell.KeyRune, 'N', ActionStep},
		{tcell.KeyRune, 'r', ActionReset},
		{tcell.KeyRune, 's', ActionReseed},
		{tcell.KeyRune, 'm', ActionMute},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tc := range cases {
		if got := ActionFor(tc.key, tc.r); got != tc.want {
			t.Fatalf("ActionFor(%v, %q) = %v, want %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestEdgesLatchOnce(t *testing.T) {
	e := NewEdges(2)
	e.Press(0)
	e.Press(0)
	e.Press(5)
	got := e.Take()
	if !got[0] || got[1] {
		t.Fatalf("first take = %v", got)
	}
	got = e.Take()
	if got[0] || got[1] {
		t.Fatalf("edges not cleared: %v", got)
	}
}

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	layout := session.Layout{
		Circles: []board.Circle{
			{Base: r2.Point{X: 300, Y: 240}, Radius: 100},
			{Base: r2.Point{X: 420, Y: 240}, Radius: 100},
		},
		Target: 1,
		Start:  [2]int{0, 1},
	}
	sess := session.NewWithLayout(session.DefaultConfig(), layout)
	return NewHost(screen, sess, nil, nil, 60), screen
}

func TestDrawShowsStatusAndAgent(t *testing.T) {
	h, screen := newTestHost(t)
	h.Draw()

	cols, rows := screen.Size()
	header := ""
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		header += string(r)
	}
	if want := " SOLO"; header[:len(want)] != want {
		t.Fatalf("status row %q", header)
	}

	found := false
	for y := 1; y < rows && !found; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == '@' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("agent glyph not drawn")
	}
}

func TestTickDeliversLatchedEdge(t *testing.T) {
	h, _ := newTestHost(t)
	h.edges.Press(0)
	h.Tick()
	if !h.sess.Snapshot().Agents[0].Armed {
		t.Fatal("latched tap should arm the agent")
	}
}

func TestPausedTickDropsEdges(t *testing.T) {
	h, _ := newTestHost(t)
	h.paused = true
	h.edges.Press(0)
	h.Tick()
	if h.sess.Snapshot().Agents[0].Armed {
		t.Fatal("paused host must not step the session")
	}
	if got := h.edges.Take(); got[0] {
		t.Fatal("edges should be cleared while paused")
	}
}

func TestResizeKeepsRunning(t *testing.T) {
	h, _ := newTestHost(t)
	if !h.Handle(tcell.NewEventResize(100, 30)) {
		t.Fatal("resize should not quit")
	}
}
