//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"ringjump/internal/render"
	"ringjump/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the board: node keys
// and a line from each agent to the node it is tracking.
type Overlay struct {
	painter  *render.Painter
	scale    float64
	visible  bool
	showKeys bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(painter *render.Painter, scale float64, visible bool) *Overlay {
	return &Overlay{painter: painter, scale: scale, visible: visible, showKeys: true}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		o.showKeys = !o.showKeys
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, snap session.Snapshot) {
	if !o.visible {
		return
	}
	o.painter.DrawNearest(screen, snap, color.RGBA{R: 255, G: 255, B: 255, A: 140})
	if !o.showKeys {
		return
	}
	face := basicfont.Face7x13
	for _, n := range snap.Nodes {
		label := fmt.Sprintf("%d-%d/%d", n.A, n.B, n.Key.Slot)
		x := int(n.P.X*o.scale) + 6
		y := int(n.P.Y*o.scale) - 6
		text.Draw(screen, label, face, x, y, color.RGBA{R: 150, G: 150, B: 170, A: 255})
	}
}
