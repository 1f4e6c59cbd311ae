package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestRectClosestPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec
		expected Vec
	}{
		{"inside is unchanged", Vec{15, 15}, Vec{15, 15}},
		{"left of the rect", Vec{5, 15}, Vec{10, 15}},
		{"below the rect", Vec{15, 30}, Vec{15, 25}},
		{"beyond a corner", Vec{40, 0}, Vec{30, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ClosestPoint(tc.p); got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{Vec{5, 5}, 1}, true},
		{"overlapping left edge", Circle{Vec{-1, 5}, 2}, true},
		{"tangent to left edge", Circle{Vec{-2, 5}, 2}, true},
		{"tangent to bottom edge", Circle{Vec{5, 12}, 2}, true},
		{"just outside left edge", Circle{Vec{-2.001, 5}, 2}, false},
		{"near corner but outside", Circle{Vec{12, 12}, 2.8}, false},
		{"touching corner", Circle{Vec{13, 14}, 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Intersects(r); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsReflection(t *testing.T) {
	// Mirror images across the rectangle's vertical axis must agree.
	r := NewRect(-5, 0, 10, 10)
	for _, x := range []float64{-8, -7, -6.5, -5, 0, 6.5, 7, 8} {
		left := Circle{Vec{x, 5}, 2}.Intersects(r)
		right := Circle{Vec{-x, 5}, 2}.Intersects(r)
		if left != right {
			t.Errorf("reflection mismatch at x=%v: %v vs %v", x, left, right)
		}
	}
}

func TestInterpolate(t *testing.T) {
	xs := []float64{-5, 5, 6, 8, 18}
	ys := []float64{-0.7, -0.5, 0, 1, math.Pi / 2}

	tests := []struct {
		x, expected float64
	}{
		{-100, -0.7},
		{-5, -0.7},
		{0, -0.6},
		{5, -0.5},
		{5.5, -0.25},
		{7, 0.5},
		{8, 1},
		{18, math.Pi / 2},
		{100, math.Pi / 2},
	}

	for _, tc := range tests {
		got := Interpolate(tc.x, xs, ys)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Interpolate(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	if got := Interpolate(1, nil, nil); got != 0 {
		t.Errorf("empty breakpoints = %v, expected 0", got)
	}
	if got := Interpolate(1, []float64{0, 1}, []float64{1}); got != 0 {
		t.Errorf("mismatched breakpoints = %v, expected 0", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, period, expected float64
	}{
		{0, 400, 0},
		{-10, 400, -10},
		{-400, 400, 0},
		{-410, 400, -10},
		{10, 400, -390},
		{-5, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.period); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.period, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5) = %v, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5) = %v, expected 10", got)
	}
}
