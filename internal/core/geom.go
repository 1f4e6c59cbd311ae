// Package core provides fundamental types and utilities for the flappy engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world units.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// ClosestPoint clamps p onto the rectangle on each axis.
func (r Rect) ClosestPoint(p Vec) Vec {
	return Vec{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// Circle is a disc used as a collision shape.
type Circle struct {
	Center Vec
	Radius float64
}

// Intersects reports whether the circle touches the rectangle.
// Tangency (distance == radius) counts as contact.
func (c Circle) Intersects(r Rect) bool {
	closest := r.ClosestPoint(c.Center)
	dx := c.Center.X - closest.X
	dy := c.Center.Y - closest.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Interpolate maps x through the piecewise-linear function defined by the
// breakpoints xs -> ys. Inputs outside [xs[0], xs[len-1]] clamp to the
// nearest endpoint. xs must be non-decreasing and the same length as ys.
func Interpolate(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x > xs[i] {
			continue
		}
		span := xs[i] - xs[i-1]
		if span == 0 {
			return ys[i]
		}
		t := (x - xs[i-1]) / span
		return ys[i-1] + t*(ys[i]-ys[i-1])
	}
	return ys[n-1]
}

// Wrap returns v folded into (-period, 0]. Used for endlessly scrolling strips.
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(v, period)
	if m > 0 {
		m -= period
	}
	return m
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
