package board

import (
	"math"

	"github.com/golang/geo/r2"
)

// Circle is one track on the board. Only its center moves over time.
type Circle struct {
	Base   r2.Point
	Radius float64

	Moving    bool
	Amplitude r2.Point
	Frequency float64 // cycles per second
	Phase     float64
}

// CenterAt returns the center of the circle at simulation time t.
func (c Circle) CenterAt(t float64) r2.Point {
	if !c.Moving {
		return c.Base
	}
	arg := 2*math.Pi*c.Frequency*t + c.Phase
	return r2.Point{
		X: c.Base.X + c.Amplitude.X*math.Sin(arg),
		Y: c.Base.Y + c.Amplitude.Y*math.Cos(arg),
	}
}
