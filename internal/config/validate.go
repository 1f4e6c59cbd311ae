package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	// NaN and Inf pass every range check below.
	for _, f := range c.numbers() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			fail("%s must be finite, got %g", f.name, f.value)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		fail("world.ground_height must be in [0, height), got %g", c.World.GroundHeight)
	}
	if c.World.GroundSpeed < 0 {
		fail("world.ground_speed must not be negative, got %g", c.World.GroundSpeed)
	}

	if c.Physics.Gravity < 0 {
		fail("physics.gravity must not be negative, got %g", c.Physics.Gravity)
	}
	if c.Physics.Jump >= 0 {
		fail("physics.jump must be negative (upward), got %g", c.Physics.Jump)
	}
	if c.Physics.StartHeightDivisor <= 1 {
		fail("physics.start_height_divisor must be greater than 1, got %g", c.Physics.StartHeightDivisor)
	} else if c.World.Height > 0 && c.StartY() > c.GroundY() {
		fail("physics.start_height_divisor puts the body below the ground (start %g, ground %g)", c.StartY(), c.GroundY())
	}

	if c.Body.Radius <= 0 {
		fail("body.radius must be positive, got %g", c.Body.Radius)
	}
	if c.Body.XRatio <= 0 || c.Body.XRatio >= 1 {
		fail("body.x_ratio must be in (0, 1), got %g", c.Body.XRatio)
	}

	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		fail("obstacles size must be positive, got %gx%g", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.GapHeight <= 0 {
		fail("obstacles.gap_height must be positive, got %g", c.Obstacles.GapHeight)
	}
	if c.Obstacles.Speed <= 0 {
		fail("obstacles.speed must be positive, got %g", c.Obstacles.Speed)
	}
	band := c.Obstacles.GapBand
	if band.Min < 0 || band.Max > 1 || band.Min > band.Max {
		fail("obstacles.gap_band must satisfy 0 <= min <= max <= 1, got [%g, %g]", band.Min, band.Max)
	}

	switch c.Rules.EndedPolicy {
	case PolicyReset, PolicyRestart:
	default:
		fail("rules.ended_policy must be %q or %q, got %q", PolicyReset, PolicyRestart, c.Rules.EndedPolicy)
	}
	switch c.Rules.CollisionTiming {
	case TimingPostRecycle, TimingPreRecycle:
	default:
		fail("rules.collision_timing must be %q or %q, got %q", TimingPostRecycle, TimingPreRecycle, c.Rules.CollisionTiming)
	}

	if c.Clock.FixedStepHz < 0 {
		fail("clock.fixed_step_hz must not be negative, got %g", c.Clock.FixedStepHz)
	}
	if c.Clock.MaxFrame < 0 {
		fail("clock.max_frame must not be negative, got %g", c.Clock.MaxFrame)
	}

	return errors.Join(errs...)
}

type namedNumber struct {
	name  string
	value float64
}

func (c FlappyConfig) numbers() []namedNumber {
	return []namedNumber{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.ground_height", c.World.GroundHeight},
		{"world.ground_speed", c.World.GroundSpeed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump", c.Physics.Jump},
		{"physics.initial_velocity", c.Physics.InitialVelocity},
		{"physics.start_height_divisor", c.Physics.StartHeightDivisor},
		{"body.x_ratio", c.Body.XRatio},
		{"body.radius", c.Body.Radius},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.gap_band.min", c.Obstacles.GapBand.Min},
		{"obstacles.gap_band.max", c.Obstacles.GapBand.Max},
		{"clock.fixed_step_hz", c.Clock.FixedStepHz},
		{"clock.max_frame", c.Clock.MaxFrame},
	}
}
