//go:build ebiten

package app

import (
	"time"

	"ringjump/internal/audio"
	"ringjump/internal/core"
	"ringjump/internal/log"
	"ringjump/internal/render"
	"ringjump/internal/session"
	"ringjump/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	player  *audio.Player
	log     *log.Logger
	clock   *core.FrameClock

	scale    float64
	hudWidth int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
	edges    []bool
}

// New constructs a Game for the provided session. player may be nil.
func New(sess *session.Session, cfg *Config, player *audio.Player, logger *log.Logger) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	painter := render.NewPainter(scale)
	return &Game{
		sess:     sess,
		painter:  painter,
		hud:      ui.NewHUD(sess, cfg.HUDWidth),
		overlay:  ui.NewOverlay(painter, scale, cfg.Debug),
		player:   player,
		log:      logger,
		clock:    core.NewFrameClock(time.Duration(sess.Config().MaxStep * float64(time.Second))),
		scale:    scale,
		hudWidth: cfg.HUDWidth,
		tps:      cfg.TPS,
		seed:     sess.Config().Seed,
		edges:    make([]bool, 2),
	}
}

// Reset restarts the session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sess.Reset(seed)
	g.clock.Reset()
	g.tickOnce = false
	g.log.Infof("reset with seed %d", seed)
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.player != nil {
		g.player.SetMuted(!g.player.Muted())
	}

	g.overlay.Update()

	g.edges[0] = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.edges[1] = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	switch {
	case g.tickOnce:
		g.sess.Step(core.TPSStep(g.tps).Seconds(), g.edges)
		g.tickOnce = false
	case !g.paused:
		g.sess.Step(g.clock.Tick(), g.edges)
	}

	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sess.Snapshot()
	g.painter.Draw(screen, snap)
	g.overlay.Draw(screen, snap)
	g.hud.Draw(screen, int(snap.Width*g.scale), snap)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.Size()
	return w, h
}

// Size returns the window size for the board plus the HUD panel.
func (g *Game) Size() (int, int) {
	cfg := g.sess.Config().Stage
	return int(cfg.Width*g.scale) + max(g.hudWidth, 0), int(cfg.Height * g.scale)
}
