package stage

import (
	"slices"
	"testing"

	"ringjump/internal/board"
	"ringjump/pkg/core"
)

func TestBuildDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for _, number := range []int{1, 4, 12} {
		a := Build(core.NewRNG(99), cfg, number, 0)
		b := Build(core.NewRNG(99), cfg, number, 0)

		if !slices.Equal(a.Circles, b.Circles) {
			t.Fatalf("stage %d: circle lists differ for identical seeds", number)
		}
		if !slices.Equal(a.Graph.PickupKeys(), b.Graph.PickupKeys()) {
			t.Fatalf("stage %d: pickup assignment differs for identical seeds", number)
		}
		if a.Target != b.Target {
			t.Fatalf("stage %d: targets differ %d vs %d", number, a.Target, b.Target)
		}
	}
}

func TestBuildDiffersAcrossSeeds(t *testing.T) {
	cfg := DefaultConfig()
	a := Build(core.NewRNG(1), cfg, 3, 0)
	b := Build(core.NewRNG(2), cfg, 3, 0)
	if slices.Equal(a.Circles, b.Circles) {
		t.Fatal("different seeds produced the same layout")
	}
}

func TestDifficultyRampMonotonic(t *testing.T) {
	p := DefaultConfig().Params
	for n := 1; n < 40; n++ {
		if CircleCount(p, n+1) < CircleCount(p, n) {
			t.Fatalf("circle count decreased at stage %d", n)
		}
		if MovingFraction(p, n+1) < MovingFraction(p, n) {
			t.Fatalf("moving fraction decreased at stage %d", n)
		}
		if Amplitude(p, n+1) < Amplitude(p, n) {
			t.Fatalf("amplitude decreased at stage %d", n)
		}
		if Frequency(p, n+1) < Frequency(p, n) {
			t.Fatalf("frequency decreased at stage %d", n)
		}
		if TargetFor(p, n+1) < TargetFor(p, n) {
			t.Fatalf("target decreased at stage %d", n)
		}
	}
	if got := CircleCount(p, 1000); got != p.MaxCircles {
		t.Fatalf("circle count not capped: %d", got)
	}
	if got := MovingFraction(p, 1000); got != p.MovingMax {
		t.Fatalf("moving fraction not capped: %v", got)
	}
}

func TestBuildShape(t *testing.T) {
	cfg := DefaultConfig()
	st := Build(core.NewRNG(5), cfg, 6, 0)
	p := cfg.Params

	if len(st.Circles) != CircleCount(p, 6) {
		t.Fatalf("expected %d circles, got %d", CircleCount(p, 6), len(st.Circles))
	}
	moving := 0
	for i, c := range st.Circles {
		if c.Radius < p.RadiusMin || c.Radius >= p.RadiusMax {
			t.Fatalf("circle %d radius %v outside range", i, c.Radius)
		}
		if c.Moving {
			moving++
			if c.Frequency <= 0 || (c.Amplitude.X == 0 && c.Amplitude.Y == 0) {
				t.Fatalf("moving circle %d has no motion: %+v", i, c)
			}
		} else if c.Amplitude.X != 0 || c.Amplitude.Y != 0 {
			t.Fatalf("stationary circle %d has amplitude", i)
		}
	}
	if want := int(MovingFraction(p, 6)*float64(len(st.Circles)) + 0.5); moving != want {
		t.Fatalf("expected %d moving circles, got %d", want, moving)
	}
	if st.Start[0] == st.Start[1] {
		t.Fatal("agents should start on different circles")
	}
	if placed := st.Graph.Pickups(); placed > 0 && st.Target > placed {
		t.Fatalf("target %d exceeds placed pickups %d", st.Target, placed)
	}
}

func TestFirstStageIsStationary(t *testing.T) {
	st := Build(core.NewRNG(8), DefaultConfig(), 1, 0)
	for i, c := range st.Circles {
		if c.Moving {
			t.Fatalf("circle %d moves on stage 1", i)
		}
	}
}

func TestPickupRatioRoughlyHalf(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.BaseCircles = 20
	var nodes, pickups int
	for seed := int64(0); seed < 40; seed++ {
		st := Build(core.NewRNG(seed), cfg, 1, 0)
		nodes += len(st.Graph.Live())
		pickups += st.Graph.Pickups()
	}
	if nodes == 0 {
		t.Fatal("no nodes generated")
	}
	ratio := float64(pickups) / float64(nodes)
	if ratio < 0.4 || ratio > 0.6 {
		t.Fatalf("pickup ratio %.2f not near one half", ratio)
	}
}

func TestPickupsOnlyOnInitialNodes(t *testing.T) {
	st := Build(core.NewRNG(21), DefaultConfig(), 9, 0)
	initial := map[board.NodeKey]bool{}
	for _, n := range st.Graph.Live() {
		initial[n.Key] = true
	}
	for tm := 0.0; tm < 30; tm += 0.5 {
		for _, n := range st.Graph.Rebuild(tm) {
			if n.HasPickup && !initial[n.Key] {
				t.Fatalf("node %+v gained a pickup after stage build", n.Key)
			}
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":            "800",
		"base_circles": "10",
		"max_circles":  "4",
		"radius_min":   "50",
		"radius_max":   "40",
		"pickup_ratio": "nope",
	})
	if c.Width != 800 {
		t.Fatalf("width = %v", c.Width)
	}
	if c.Params.BaseCircles != 10 || c.Params.MaxCircles != 10 {
		t.Fatalf("circle bounds = %d/%d", c.Params.BaseCircles, c.Params.MaxCircles)
	}
	if c.Params.RadiusMin != 50 || c.Params.RadiusMax != 50 {
		t.Fatalf("radius bounds = %v/%v", c.Params.RadiusMin, c.Params.RadiusMax)
	}
	if c.Params.PickupRatio != DefaultConfig().Params.PickupRatio {
		t.Fatal("unparsable value should keep default")
	}
}

func TestSweepCounts(t *testing.T) {
	cfg := DefaultConfig()
	res := Sweep(cfg, 3, 100, 12, 5, 20, 4, 3)
	if res.Stages != 12 || res.Samples != 5 {
		t.Fatalf("unexpected sweep shape %+v", res)
	}
	if res.MinNodes > res.MaxNodes {
		t.Fatalf("min %d > max %d", res.MinNodes, res.MaxNodes)
	}
	if res.MeanNodes < float64(res.MinNodes) || res.MeanNodes > float64(res.MaxNodes) {
		t.Fatalf("mean %v outside [%d,%d]", res.MeanNodes, res.MinNodes, res.MaxNodes)
	}
	if res.SparseRate() < 0 || res.SparseRate() > 1 {
		t.Fatalf("sparse rate %v", res.SparseRate())
	}

	again := Sweep(cfg, 3, 100, 12, 5, 20, 4, 1)
	if again != res {
		t.Fatalf("sweep not deterministic across worker counts: %+v vs %+v", res, again)
	}
}
