package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestDetectCollision(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	groundY := cfg.GroundY()

	tests := []struct {
		name     string
		y        float64
		pipeX    float64
		gap      float64
		expected CollisionKind
	}{
		{"clear sky", 333, 300, 360, CollisionNone},
		{"tangent to barrier edge", 333, 112, 600, CollisionPipe},
		{"just short of barrier", 333, 112.0001, 600, CollisionNone},
		{"inside gap", 360, 95, 360, CollisionNone},
		{"grazing upper barrier", 297, 95, 360, CollisionPipe},
		{"grazing lower barrier", 423, 95, 360, CollisionPipe},
		{"on ground line", groundY, 300, 360, CollisionNone},
		{"below ground line", groundY + 0.01, 300, 360, CollisionGround},
		{"ground wins over pipe", groundY + 1, 95, 200, CollisionGround},
		{"inside corner radius", 291, 109, 360, CollisionPipe},
		{"outside corner radius", 294, 109, 360, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(cfg)
			b.Y = tc.y
			p := Pipe{X: tc.pipeX, GapCenter: tc.gap, Width: 104, Height: 640, GapHeight: 150}

			if got := DetectCollision(b, p, groundY); got != tc.expected {
				t.Errorf("DetectCollision = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestScorerEdgeTriggered(t *testing.T) {
	s := NewScorer(100)

	if s.Observe(50) {
		t.Error("unprimed scorer should not fire")
	}

	s.Prime(120)
	samples := []struct {
		x        float64
		expected bool
	}{
		{110, false},
		{100, false}, // at the line is not past it
		{99.9, true},
		{90, false},
		{-50, false},
	}
	for _, tc := range samples {
		if got := s.Observe(tc.x); got != tc.expected {
			t.Errorf("Observe(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}

	s.Prime(400)
	if s.Observe(350) {
		t.Error("re-primed scorer fired without crossing")
	}
}

func TestTilt(t *testing.T) {
	tests := []struct {
		v        float64
		expected float64
	}{
		{-20, -0.7},
		{-5, -0.7},
		{0, -0.6},
		{5, -0.5},
		{5.5, -0.25},
		{6, 0},
		{7, 0.5},
		{8, 1},
		{100, 1.5707963267948966},
	}

	for _, tc := range tests {
		got := Tilt(tc.v, -5, 18)
		if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Tilt(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}

	// Velocities past the gravity breakpoint clamp to the end angle.
	if Tilt(13, -5, 18) >= Tilt(18, -5, 18) {
		t.Error("Tilt should still be rising between 8 and gravity")
	}
}

func TestTiltUnusualTuning(t *testing.T) {
	// Gravity below the fixed breakpoints collapses the tail instead of
	// producing a backwards domain.
	if got := Tilt(50, -5, 2); got != 1.5707963267948966 {
		t.Errorf("Tilt = %v, expected the end angle", got)
	}
	if got := Tilt(-50, -5, 2); got != -0.7 {
		t.Errorf("Tilt = %v, expected the start angle", got)
	}
}
