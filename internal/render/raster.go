package render

import (
	"math"

	"github.com/golang/geo/r2"

	"ringjump/internal/core"
	"ringjump/internal/geom"
	"ringjump/internal/session"
)

// Viewport maps board coordinates onto grid cells.
type Viewport struct {
	Scale  float64
	Aspect float64 // vertical squash for non-square cells
	OffX   float64
	OffY   float64
}

// Fit returns a viewport that shows a w*h board centered in cols*rows cells.
// aspect is the cell width/height ratio (0.5 for typical terminal cells).
func Fit(w, h float64, cols, rows int, aspect float64) Viewport {
	if aspect <= 0 {
		aspect = 1
	}
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return Viewport{Scale: 1, Aspect: aspect}
	}
	scale := math.Min(float64(cols)/w, float64(rows)/(h*aspect))
	return Viewport{
		Scale:  scale,
		Aspect: aspect,
		OffX:   (float64(cols) - w*scale) / 2,
		OffY:   (float64(rows) - h*scale*aspect) / 2,
	}
}

// Cell returns the grid cell containing board point p.
func (v Viewport) Cell(p r2.Point) (int, int) {
	x := p.X*v.Scale + v.OffX
	y := p.Y*v.Scale*v.Aspect + v.OffY
	return int(math.Floor(x)), int(math.Floor(y))
}

// Rasterize clears dst and draws the snapshot's circles, nodes and agents
// as cell codes.
func Rasterize(dst *core.ByteGrid, snap session.Snapshot, vp Viewport) {
	dst.Clear()

	for _, c := range snap.Circles {
		code := CellCircle
		switch {
		case burnt(c):
			code = CellBurnt
		case c.Moving:
			code = CellMoving
		}
		drawRing(dst, vp, c.Center, c.Radius, code)
	}

	for _, n := range snap.Nodes {
		code := CellNode
		switch {
		case n.HasPickup && n.Taken:
			code = CellTaken
		case n.HasPickup:
			code = CellPickup
		}
		x, y := vp.Cell(n.P)
		dst.Set(x, y, code)
	}

	for i, a := range snap.Agents {
		if !a.Alive {
			continue
		}
		x, y := vp.Cell(a.Pos)
		dst.Set(x, y, AgentCell(i))
		if a.Armed {
			c := snap.Circles[a.Circle]
			ahead := geom.PointAt(c.Center, c.Radius, a.Theta+math.Copysign(3/math.Max(vp.Scale*c.Radius, 1), a.Speed))
			ax, ay := vp.Cell(ahead)
			if ax != x || ay != y {
				dst.Set(ax, ay, CellArmed)
			}
		}
	}
}

func burnt(c session.CircleView) bool {
	for _, b := range c.BurntBy {
		if b {
			return true
		}
	}
	return false
}

func drawRing(dst *core.ByteGrid, vp Viewport, center r2.Point, radius float64, code uint8) {
	steps := int(math.Ceil(2 * math.Pi * radius * vp.Scale * 2))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		p := geom.PointAt(center, radius, geom.TwoPi*float64(i)/float64(steps))
		x, y := vp.Cell(p)
		dst.Set(x, y, code)
	}
}
