// Package geom holds the circle intersection math the board is built from.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Intersect returns the crossing points of the circle at a with radius ra and
// the circle at b with radius rb. ok is false when the circles are concentric,
// too far apart or nested. Tangent circles still yield two (identical) points
// so callers can keep one slot per solution.
//
// Slot 0 lies on the counterclockwise side of the a->b direction.
func Intersect(a r2.Point, ra float64, b r2.Point, rb float64) (pts [2]r2.Point, ok bool) {
	ab := b.Sub(a)
	d := ab.Norm()
	if d == 0 || d > ra+rb || d < math.Abs(ra-rb) {
		return pts, false
	}
	along := (ra*ra - rb*rb + d*d) / (2 * d)
	h2 := ra*ra - along*along
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	mid := a.Add(ab.Mul(along / d))
	off := ab.Ortho().Mul(h / d)
	pts[0] = mid.Add(off)
	pts[1] = mid.Sub(off)
	return pts, true
}

// AngleFrom returns the angle of p as seen from center, in (-π, π].
func AngleFrom(center, p r2.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// PointAt returns the point on the circle at angle theta.
func PointAt(center r2.Point, radius, theta float64) r2.Point {
	return r2.Point{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)}
}

// Wrap maps theta into [0, 2π).
func Wrap(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	// Mod of a tiny negative value can round up to exactly 2π.
	if theta >= TwoPi {
		theta = 0
	}
	return theta
}

// Delta returns the signed smallest difference to - from, in [-π, π).
func Delta(from, to float64) float64 {
	d := Wrap(to-from+math.Pi) - math.Pi
	return d
}
