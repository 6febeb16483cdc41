// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"ringjump/internal/audio"
	"ringjump/internal/core"
	"ringjump/internal/log"
	"ringjump/internal/render"
	"ringjump/internal/session"
	"ringjump/internal/ui"
)

// CellAspect is the width/height ratio of a typical terminal cell.
const CellAspect = 0.5

// Host drives a session on a tcell screen.
type Host struct {
	screen tcell.Screen
	sess   *session.Session
	player *audio.Player
	log    *log.Logger
	clock  *core.FrameClock

	tps      int
	seed     int64
	paused   bool
	tickOnce bool

	edges  *Edges
	grid   *core.ByteGrid
	styles []tcell.Style
}

// NewHost wires a screen to a session. player may be nil.
func NewHost(screen tcell.Screen, sess *session.Session, player *audio.Player, logger *log.Logger, tps int) *Host {
	styles := make([]tcell.Style, len(render.Palette))
	bg := render.Palette[render.CellEmpty]
	for i, c := range render.Palette {
		styles[i] = tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))).
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &Host{
		screen: screen,
		sess:   sess,
		player: player,
		log:    logger,
		clock:  core.NewFrameClock(time.Duration(sess.Config().MaxStep * float64(time.Second))),
		tps:    tps,
		seed:   sess.Config().Seed,
		edges:  NewEdges(2),
		grid:   core.NewByteGrid(1, 1),
		styles: styles,
	}
}

// Run pumps events and ticks the session until quit or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(core.TPSStep(h.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Fini was called.
				return
			}
			events <- ev
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.Tick()
			h.Draw()
		}
	}
}

// Handle applies one terminal event. It returns false when the user quits.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ActionFor(ev.Key(), ev.Rune()) {
		case ActionQuit:
			return false
		case ActionActivate1:
			h.edges.Press(0)
		case ActionActivate2:
			h.edges.Press(1)
		case ActionPause:
			h.paused = !h.paused
			h.clock.Reset()
		case ActionStep:
			h.tickOnce = true
		case ActionReset:
			h.reset(h.seed)
		case ActionReseed:
			h.reset(time.Now().UnixNano())
		case ActionMute:
			if h.player != nil {
				h.player.SetMuted(!h.player.Muted())
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sess.Reset(seed)
	h.clock.Reset()
	h.edges.Take()
	h.log.Infof("reset with seed %d", seed)
}

// Tick advances the session by one frame using the latched edges.
func (h *Host) Tick() {
	switch {
	case h.tickOnce:
		h.sess.Step(core.TPSStep(h.tps).Seconds(), h.edges.Take())
		h.tickOnce = false
	case !h.paused:
		h.sess.Step(h.clock.Tick(), h.edges.Take())
	default:
		h.edges.Take()
	}
}

// Draw rasterizes the latest snapshot to the screen. The status lines take
// the top rows; the board fills the rest.
func (h *Host) Draw() {
	snap := h.sess.Snapshot()
	status := ui.StatusLines(snap, h.paused)
	cols, rows := h.screen.Size()
	boardRows := rows - 1
	if boardRows < 1 {
		boardRows = 1
	}
	h.grid.Resize(cols, boardRows)
	render.Rasterize(h.grid, snap, render.Fit(snap.Width, snap.Height, cols, boardRows, CellAspect))

	h.screen.Clear()
	for y := 0; y < h.grid.H; y++ {
		for x := 0; x < h.grid.W; x++ {
			code := h.grid.At(x, y)
			h.screen.SetContent(x, y+1, render.Glyphs[code], nil, h.styles[code])
		}
	}
	h.drawText(0, 0, " "+strings.Join(status, " | ")+" ", h.styles[render.CellNode].Reverse(true))
	h.screen.Show()
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
