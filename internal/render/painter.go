//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ringjump/internal/session"
)

// Painter draws a snapshot with vector primitives.
type Painter struct {
	scale float32
}

// NewPainter constructs a painter for the given board-to-screen scale.
func NewPainter(scale float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	return &Painter{scale: float32(scale)}
}

// Draw renders circles, nodes and agents onto dst.
func (p *Painter) Draw(dst *ebiten.Image, snap session.Snapshot) {
	dst.Fill(Palette[CellEmpty])
	s := p.scale

	for _, c := range snap.Circles {
		col := Palette[CellCircle]
		switch {
		case burnt(c):
			col = Palette[CellBurnt]
		case c.Moving:
			col = Palette[CellMoving]
		}
		vector.StrokeCircle(dst, float32(c.Center.X)*s, float32(c.Center.Y)*s, float32(c.Radius)*s, 2, col, true)
	}

	for _, n := range snap.Nodes {
		x, y := float32(n.P.X)*s, float32(n.P.Y)*s
		switch {
		case n.HasPickup && n.Taken:
			vector.StrokeCircle(dst, x, y, 5*s, 1.5, Palette[CellTaken], true)
		case n.HasPickup:
			vector.DrawFilledCircle(dst, x, y, 6*s, Palette[CellPickup], true)
		default:
			vector.DrawFilledCircle(dst, x, y, 3*s, Palette[CellNode], true)
		}
	}

	for i, a := range snap.Agents {
		if !a.Alive {
			continue
		}
		col := Palette[AgentCell(i)]
		x, y := float32(a.Pos.X)*s, float32(a.Pos.Y)*s
		vector.DrawFilledCircle(dst, x, y, 7*s, col, true)
		if a.Armed {
			vector.StrokeCircle(dst, x, y, 12*s, 2, Palette[CellArmed], true)
		}
	}
}

// DrawNearest draws a line from each living agent to its nearest node.
func (p *Painter) DrawNearest(dst *ebiten.Image, snap session.Snapshot, clr color.Color) {
	s := p.scale
	for _, a := range snap.Agents {
		if !a.Alive || !a.HasNearest {
			continue
		}
		for _, n := range snap.Nodes {
			if n.Key != a.Nearest {
				continue
			}
			vector.StrokeLine(dst, float32(a.Pos.X)*s, float32(a.Pos.Y)*s, float32(n.P.X)*s, float32(n.P.Y)*s, 1, clr, true)
			break
		}
	}
}
