package render

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"ringjump/internal/board"
	"ringjump/internal/core"
	"ringjump/internal/session"
)

func sampleSnapshot() session.Snapshot {
	h := math.Sqrt(175)
	return session.Snapshot{
		Width:  80,
		Height: 50,
		Circles: []session.CircleView{
			{Center: r2.Point{X: 25, Y: 25}, Radius: 20, BurntBy: []bool{true}},
			{Center: r2.Point{X: 55, Y: 25}, Radius: 20, Moving: true, BurntBy: []bool{false}},
		},
		Nodes: []board.Node{
			{Key: board.NodeKey{Slot: 0}, A: 0, B: 1, P: r2.Point{X: 40, Y: 25 + h}, HasPickup: true},
			{Key: board.NodeKey{Slot: 1}, A: 0, B: 1, P: r2.Point{X: 40, Y: 25 - h}, HasPickup: true, Taken: true},
		},
		Agents: []session.AgentView{
			{Alive: true, Circle: 1, Theta: 0, Pos: r2.Point{X: 75, Y: 25}, Speed: 1},
		},
	}
}

func TestPaletteCoversCells(t *testing.T) {
	if len(Palette) != int(cellCount) || len(Glyphs) != int(cellCount) {
		t.Fatalf("palette=%d glyphs=%d cells=%d", len(Palette), len(Glyphs), cellCount)
	}
}

func TestFitCentersBoard(t *testing.T) {
	vp := Fit(80, 50, 160, 50, 0.5)
	if vp.Scale != 2 {
		t.Fatalf("scale = %v, expected 2", vp.Scale)
	}
	if x, y := vp.Cell(r2.Point{X: 40, Y: 25}); x != 80 || y != 25 {
		t.Fatalf("board center maps to (%d,%d)", x, y)
	}
}

func TestRasterizeDrawsLayers(t *testing.T) {
	snap := sampleSnapshot()
	grid := core.NewByteGrid(80, 50)
	vp := Viewport{Scale: 1, Aspect: 1}
	Rasterize(grid, snap, vp)

	if got := grid.At(75, 25); got != CellAgent1 {
		t.Fatalf("agent cell = %d", got)
	}
	x, y := vp.Cell(snap.Nodes[0].P)
	if got := grid.At(x, y); got != CellPickup {
		t.Fatalf("pickup cell = %d", got)
	}
	x, y = vp.Cell(snap.Nodes[1].P)
	if got := grid.At(x, y); got != CellTaken {
		t.Fatalf("taken cell = %d", got)
	}
	if got := grid.At(5, 25); got != CellBurnt {
		t.Fatalf("burnt circle cell = %d", got)
	}
	moving := 0
	for _, v := range grid.Cells() {
		if v == CellMoving {
			moving++
		}
	}
	if moving < 40 {
		t.Fatalf("moving circle drew only %d cells", moving)
	}
	if got := grid.At(40, 45); got != CellEmpty {
		t.Fatalf("empty cell = %d", got)
	}
}

func TestRasterizeSkipsDeadAgents(t *testing.T) {
	snap := sampleSnapshot()
	snap.Agents[0].Alive = false
	grid := core.NewByteGrid(80, 50)
	Rasterize(grid, snap, Viewport{Scale: 1, Aspect: 1})
	for _, v := range grid.Cells() {
		if v == CellAgent1 {
			t.Fatal("dead agent drawn")
		}
	}
}

func TestImageUsesPalette(t *testing.T) {
	grid := core.NewByteGrid(2, 1)
	grid.Set(1, 0, CellPickup)
	img := Image(grid, Palette)
	if got := img.RGBAAt(1, 0); got != Palette[CellPickup] {
		t.Fatalf("pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != Palette[CellEmpty] {
		t.Fatalf("pixel = %v", got)
	}
	blank := Image(grid, nil)
	if blank.RGBAAt(1, 0).A != 0 {
		t.Fatal("empty palette should yield transparent pixels")
	}
}
