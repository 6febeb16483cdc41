//go:build ebiten

package ui

import (
	"image/color"

	"ringjump/internal/core"
	"ringjump/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status and parameter panel to the right of the board.
type HUD struct {
	source     parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(sess *session.Session, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: sess, width: width}
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.snapshot = h.source.Parameters()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, snap session.Snapshot) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range StatusLines(snap, h.paused) {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}
	y += sectionGap
	for _, line := range ParamLines(h.snapshot) {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 10
	sectionGap     = 10
)
