package board

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func pairCircles() []Circle {
	return []Circle{
		{Base: r2.Point{}, Radius: 20},
		{Base: r2.Point{X: 30}, Radius: 20},
	}
}

func driftingPair() []Circle {
	return []Circle{
		{Base: r2.Point{}, Radius: 20},
		{
			Base:      r2.Point{X: 30},
			Radius:    20,
			Moving:    true,
			Amplitude: r2.Point{X: 30},
			Frequency: 0.25,
		},
	}
}

func TestCenterAtStationary(t *testing.T) {
	c := Circle{Base: r2.Point{X: 3, Y: 4}, Radius: 1}
	for _, tm := range []float64{0, 1.5, 100} {
		if got := c.CenterAt(tm); got != c.Base {
			t.Fatalf("stationary center moved to %v at t=%v", got, tm)
		}
	}
}

func TestCenterAtOscillates(t *testing.T) {
	c := driftingPair()[1]
	if got := c.CenterAt(1); math.Abs(got.X-60) > 1e-9 {
		t.Fatalf("quarter period center x = %v, expected 60", got.X)
	}
	if got := c.CenterAt(3); math.Abs(got.X) > 1e-9 {
		t.Fatalf("three quarter period center x = %v, expected 0", got.X)
	}
	if got := c.CenterAt(4); math.Abs(got.X-30) > 1e-9 {
		t.Fatalf("full period center x = %v, expected 30", got.X)
	}
}

func TestRebuildEmitsTwoSlotsPerPair(t *testing.T) {
	g := NewGraph(pairCircles())
	live := g.Rebuild(0)
	if len(live) != 2 {
		t.Fatalf("expected 2 live nodes, got %d", len(live))
	}
	for slot, n := range live {
		if n.Key != (NodeKey{Pair: 0, Slot: slot}) {
			t.Fatalf("node %d key = %+v", slot, n.Key)
		}
		if n.A != 0 || n.B != 1 {
			t.Fatalf("node %d owners = (%d,%d)", slot, n.A, n.B)
		}
		if ang, ok := n.AngleOn(0); !ok || ang != n.AngA {
			t.Fatal("AngleOn(0) should return AngA")
		}
		if ang, ok := n.AngleOn(1); !ok || ang != n.AngB {
			t.Fatal("AngleOn(1) should return AngB")
		}
		if _, ok := n.AngleOn(2); ok {
			t.Fatal("AngleOn for unrelated circle should fail")
		}
		if n.Other(0) != 1 || n.Other(1) != 0 || n.Other(5) != -1 {
			t.Fatal("Other returned the wrong circle")
		}
	}
	if live[0].P.Y <= 0 || live[1].P.Y >= 0 {
		t.Fatalf("slot order unexpected: %v %v", live[0].P, live[1].P)
	}
}

func TestRebuildSkipsDisjointAndConcentric(t *testing.T) {
	g := NewGraph([]Circle{
		{Base: r2.Point{}, Radius: 10},
		{Base: r2.Point{}, Radius: 10},
		{Base: r2.Point{X: 500}, Radius: 10},
	})
	if live := g.Rebuild(0); len(live) != 0 {
		t.Fatalf("expected no nodes, got %d", len(live))
	}
	if g.Known() != 0 {
		t.Fatalf("no identities should be recorded, got %d", g.Known())
	}
}

func TestNodeStatePersistsWhilePairSeparates(t *testing.T) {
	g := NewGraph(driftingPair())
	live := g.Rebuild(0)
	if len(live) != 2 {
		t.Fatalf("expected pair to intersect at t=0, got %d nodes", len(live))
	}
	key := live[0].Key
	g.SetPickup(key, true)
	if !g.Claim(key) {
		t.Fatal("claim of fresh pickup should succeed")
	}
	if g.Claim(key) {
		t.Fatal("second claim must fail")
	}
	if !g.Live()[0].Taken {
		t.Fatal("live copy should reflect the claim")
	}

	if live := g.Rebuild(1); len(live) != 0 {
		t.Fatalf("pair should be apart at t=1, got %d nodes", len(live))
	}
	if !g.Taken(key) {
		t.Fatal("taken flag lost while pair is apart")
	}
	if g.Remaining() != 0 || g.Pickups() != 1 {
		t.Fatalf("remaining=%d pickups=%d", g.Remaining(), g.Pickups())
	}

	live = g.Rebuild(2)
	if len(live) != 2 {
		t.Fatalf("pair should cross again at t=2, got %d nodes", len(live))
	}
	var found bool
	for _, n := range live {
		if n.Key == key {
			found = true
			if !n.HasPickup || !n.Taken {
				t.Fatalf("reappearing node lost state: %+v", n)
			}
		}
	}
	if !found {
		t.Fatal("node identity did not reappear")
	}
	if g.Known() != 2 {
		t.Fatalf("identities should be reused, known=%d", g.Known())
	}
}

func TestPickupKeysSorted(t *testing.T) {
	g := NewGraph([]Circle{
		{Base: r2.Point{}, Radius: 20},
		{Base: r2.Point{X: 30}, Radius: 20},
		{Base: r2.Point{X: 15, Y: 25}, Radius: 20},
	})
	for _, n := range g.Rebuild(0) {
		g.SetPickup(n.Key, true)
	}
	keys := g.PickupKeys()
	if len(keys) != g.Pickups() {
		t.Fatalf("keys=%d pickups=%d", len(keys), g.Pickups())
	}
	for i := 1; i < len(keys); i++ {
		prev, cur := keys[i-1], keys[i]
		if prev.Pair > cur.Pair || (prev.Pair == cur.Pair && prev.Slot >= cur.Slot) {
			t.Fatalf("keys out of order: %+v before %+v", prev, cur)
		}
	}
}

func TestNewGraphPanicsOnBadRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero radius")
		}
	}()
	NewGraph([]Circle{{Radius: 0}})
}
