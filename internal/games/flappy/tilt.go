package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// tiltAngles are the rotations (radians) at each velocity breakpoint.
var tiltAngles = []float64{-0.7, -0.5, 0, 1, math.Pi / 2}

// Tilt maps a vertical velocity to a presentation rotation in radians.
// The velocity breakpoints are [jump, -jump, 6, 8, gravity]; values outside
// clamp to the end angles. Breakpoints that would run backwards for unusual
// tunings are raised to keep the domain non-decreasing.
func Tilt(velocity, jump, gravity float64) float64 {
	xs := []float64{jump, -jump, 6, 8, gravity}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			xs[i] = xs[i-1]
		}
	}
	return core.Interpolate(velocity, xs, tiltAngles)
}
