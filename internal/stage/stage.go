// Package stage generates the circle boards a session is played on.
package stage

import (
	"math"

	"github.com/golang/geo/r2"

	"ringjump/internal/board"
	"ringjump/pkg/core"
)

// Stage is one generated board together with its completion target.
type Stage struct {
	Number  int
	Circles []board.Circle
	Graph   *board.Graph
	Target  int

	// Start holds the starting circle for each of up to two agents.
	Start [2]int
}

// CircleCount returns the number of circles for the given stage.
func CircleCount(p Params, number int) int {
	n := p.BaseCircles + (clampStage(number)-1)*p.CirclesPerStage
	if n > p.MaxCircles {
		n = p.MaxCircles
	}
	if n < 2 {
		n = 2
	}
	return n
}

// MovingFraction returns the share of circles that oscillate.
func MovingFraction(p Params, number int) float64 {
	f := p.MovingBase + float64(clampStage(number)-1)*p.MovingPerStage
	return math.Min(math.Max(f, 0), math.Min(p.MovingMax, 1))
}

// Amplitude returns the peak oscillation offset in board units.
func Amplitude(p Params, number int) float64 {
	return p.AmplitudeBase + float64(clampStage(number)-1)*p.AmplitudePerStage
}

// Frequency returns the oscillation frequency in cycles per second.
func Frequency(p Params, number int) float64 {
	return p.FrequencyBase + float64(clampStage(number)-1)*p.FrequencyPerStage
}

// TargetFor returns the pickup target before it is capped by the pickups
// actually placed on the board.
func TargetFor(p Params, number int) int {
	return p.TargetBase + (clampStage(number)-1)*p.TargetPerStage
}

func clampStage(number int) int {
	if number < 1 {
		return 1
	}
	return number
}

// Build generates stage number using rng. Circles are placed around an
// ellipse with jitter; the node graph is computed at time t0 and roughly
// PickupRatio of the nodes found receive a pickup. Sparse boards are
// returned as-is.
func Build(rng *core.RNG, cfg Config, number int, t0 float64) *Stage {
	p := cfg.Params
	n := CircleCount(p, number)

	cx, cy := cfg.Width/2, cfg.Height/2
	rx, ry := cfg.Width*p.RingFillX, cfg.Height*p.RingFillY
	step := 2 * math.Pi / float64(n)
	offset := rng.Range(0, 2*math.Pi)

	circles := make([]board.Circle, n)
	for i := range circles {
		ang := offset + float64(i)*step + rng.Jitter(step*p.AngleJitter)
		scale := 1 + rng.Jitter(p.RadialJitter)
		circles[i] = board.Circle{
			Base: r2.Point{
				X: cx + rx*scale*math.Cos(ang),
				Y: cy + ry*scale*math.Sin(ang),
			},
			Radius: rng.Range(p.RadiusMin, p.RadiusMax),
		}
	}

	moving := int(math.Round(MovingFraction(p, number) * float64(n)))
	amp := Amplitude(p, number)
	freq := Frequency(p, number)
	for _, idx := range rng.Perm(n)[:moving] {
		c := &circles[idx]
		c.Moving = true
		c.Amplitude = r2.Point{X: amp * rng.Range(0.5, 1), Y: amp * rng.Range(0.5, 1)}
		c.Frequency = freq * rng.Range(0.8, 1.2)
		c.Phase = rng.Range(0, 2*math.Pi)
	}

	g := board.NewGraph(circles)
	for _, node := range g.Rebuild(t0) {
		if rng.Chance(p.PickupRatio) {
			g.SetPickup(node.Key, true)
		}
	}

	target := TargetFor(p, number)
	if placed := g.Pickups(); placed > 0 && target > placed {
		target = placed
	}

	return &Stage{
		Number:  clampStage(number),
		Circles: g.Circles(),
		Graph:   g,
		Target:  target,
		Start:   [2]int{0, n / 2},
	}
}
