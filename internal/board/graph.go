// Package board maintains the circles of a stage and the transfer nodes
// where their boundaries cross.
package board

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r2"

	"ringjump/internal/geom"
)

// NodeKey identifies a node for the lifetime of a stage: the index of the
// circle pair that owns it and which of the two crossing solutions it is.
type NodeKey struct {
	Pair int
	Slot int
}

// Node is a live crossing point between circles A and B. P and the angles
// are refreshed every rebuild; the pickup flags persist per NodeKey.
type Node struct {
	Key  NodeKey
	A, B int
	P    r2.Point
	AngA float64
	AngB float64

	HasPickup bool
	Taken     bool
}

// Touches reports whether the node lies on the given circle.
func (n Node) Touches(circle int) bool { return n.A == circle || n.B == circle }

// Other returns the circle on the far side of the node, or -1 if the node
// does not touch circle.
func (n Node) Other(circle int) int {
	switch circle {
	case n.A:
		return n.B
	case n.B:
		return n.A
	}
	return -1
}

// AngleOn returns the node's angle as seen from the given circle's center.
func (n Node) AngleOn(circle int) (float64, bool) {
	switch circle {
	case n.A:
		return n.AngA, true
	case n.B:
		return n.AngB, true
	}
	return 0, false
}

// Open reports whether the node still carries an unclaimed pickup.
func (n Node) Open() bool { return n.HasPickup && !n.Taken }

type nodeState struct {
	hasPickup bool
	taken     bool
}

// Graph computes the live node list for a fixed set of circles. State for
// nodes whose circles have drifted apart is retained so a node reappears
// with the same pickup flags when its pair crosses again.
type Graph struct {
	circles []Circle
	pairs   [][2]int
	state   map[NodeKey]*nodeState
	live    []Node
	time    float64
}

// NewGraph prepares a graph for the provided circles. A non-positive radius
// is a construction bug and panics.
func NewGraph(circles []Circle) *Graph {
	for i, c := range circles {
		if c.Radius <= 0 {
			panic(fmt.Sprintf("board: circle %d has non-positive radius %v", i, c.Radius))
		}
	}
	n := len(circles)
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return &Graph{
		circles: slices.Clone(circles),
		pairs:   pairs,
		state:   make(map[NodeKey]*nodeState),
		live:    make([]Node, 0, 2*len(pairs)),
	}
}

// Circles exposes the circle definitions. Callers must not modify them.
func (g *Graph) Circles() []Circle { return g.circles }

// Len returns the number of circles.
func (g *Graph) Len() int { return len(g.circles) }

// Time returns the time of the last rebuild.
func (g *Graph) Time() float64 { return g.time }

// Pair returns the circle indices owning the given pair index.
func (g *Graph) Pair(idx int) (int, int) {
	p := g.pairs[idx]
	return p[0], p[1]
}

// CenterAt returns circle i's center at time t.
func (g *Graph) CenterAt(i int, t float64) r2.Point { return g.circles[i].CenterAt(t) }

// Rebuild recomputes the live node list at time t and returns it. The
// returned slice is reused by the next rebuild.
func (g *Graph) Rebuild(t float64) []Node {
	g.time = t
	g.live = g.live[:0]

	centers := make([]r2.Point, len(g.circles))
	for i, c := range g.circles {
		centers[i] = c.CenterAt(t)
	}

	for pi, pair := range g.pairs {
		a, b := pair[0], pair[1]
		ca, cb := centers[a], centers[b]
		pts, ok := geom.Intersect(ca, g.circles[a].Radius, cb, g.circles[b].Radius)
		if !ok {
			continue
		}
		for slot, p := range pts {
			key := NodeKey{Pair: pi, Slot: slot}
			st, seen := g.state[key]
			if !seen {
				st = &nodeState{}
				g.state[key] = st
			}
			g.live = append(g.live, Node{
				Key:       key,
				A:         a,
				B:         b,
				P:         p,
				AngA:      geom.AngleFrom(ca, p),
				AngB:      geom.AngleFrom(cb, p),
				HasPickup: st.hasPickup,
				Taken:     st.taken,
			})
		}
	}
	return g.live
}

// Live returns the node list produced by the last rebuild.
func (g *Graph) Live() []Node { return g.live }

// SetPickup assigns or clears the pickup on a known node. Unknown keys are
// ignored.
func (g *Graph) SetPickup(key NodeKey, has bool) {
	st, ok := g.state[key]
	if !ok {
		return
	}
	st.hasPickup = has
	for i := range g.live {
		if g.live[i].Key == key {
			g.live[i].HasPickup = has
		}
	}
}

// Claim marks the node's pickup as taken. It reports false when the node
// has no pickup or it was already taken.
func (g *Graph) Claim(key NodeKey) bool {
	st, ok := g.state[key]
	if !ok || !st.hasPickup || st.taken {
		return false
	}
	st.taken = true
	for i := range g.live {
		if g.live[i].Key == key {
			g.live[i].Taken = true
		}
	}
	return true
}

// Taken reports whether the node's pickup has been claimed.
func (g *Graph) Taken(key NodeKey) bool {
	st, ok := g.state[key]
	return ok && st.taken
}

// Known returns the number of node identities seen so far this stage.
func (g *Graph) Known() int { return len(g.state) }

// Pickups returns the number of nodes carrying a pickup, taken or not.
func (g *Graph) Pickups() int {
	n := 0
	for _, st := range g.state {
		if st.hasPickup {
			n++
		}
	}
	return n
}

// Remaining returns the number of unclaimed pickups, including those on
// nodes that are currently not live.
func (g *Graph) Remaining() int {
	n := 0
	for _, st := range g.state {
		if st.hasPickup && !st.taken {
			n++
		}
	}
	return n
}

// PickupKeys returns the keys of all nodes carrying a pickup in pair/slot order.
func (g *Graph) PickupKeys() []NodeKey {
	keys := make([]NodeKey, 0)
	for k, st := range g.state {
		if st.hasPickup {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(x, y NodeKey) int {
		if x.Pair != y.Pair {
			return x.Pair - y.Pair
		}
		return x.Slot - y.Slot
	})
	return keys
}
