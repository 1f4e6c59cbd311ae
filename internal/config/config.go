// Package config provides YAML-based configuration loading and validation
// for the flappy engine.
package config

// Ended-phase tap policies.
const (
	// PolicyReset makes a tap while Ended reset everything and return to
	// Ready; a further tap starts play.
	PolicyReset = "reset"
	// PolicyRestart makes a tap while Ended reset everything and start
	// playing immediately, kicking the body.
	PolicyRestart = "restart"
)

// Collision timing relative to the obstacle scroll within a tick.
const (
	// TimingPostRecycle tests collisions against the geometry produced by
	// this tick's scroll and any recycle.
	TimingPostRecycle = "post_recycle"
	// TimingPreRecycle tests against the geometry from before the scroll,
	// reproducing the stale-rectangle variant.
	TimingPreRecycle = "pre_recycle"
)

// FlappyConfig contains all tunables for the simulation.
type FlappyConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Body      BodyConfig     `yaml:"body"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Rules     RulesConfig    `yaml:"rules"`
	Clock     ClockConfig    `yaml:"clock"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundSpeed  float64 `yaml:"ground_speed"` // Units per second
}

// PhysicsConfig defines body dynamics.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // Velocity gained per second
	Jump               float64 `yaml:"jump"`                 // Velocity set by an impulse (negative = up)
	InitialVelocity    float64 `yaml:"initial_velocity"`     // Velocity after reset
	StartHeightDivisor float64 `yaml:"start_height_divisor"` // Start position is world height divided by this
}

// BodyConfig defines the controlled entity's fixed geometry.
type BodyConfig struct {
	XRatio float64 `yaml:"x_ratio"` // Horizontal position as a fraction of world width
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines the gated obstacle.
type ObstacleConfig struct {
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	GapHeight float64  `yaml:"gap_height"`
	Speed     float64  `yaml:"speed"` // Units per second
	GapBand   BandSpec `yaml:"gap_band"`
}

// BandSpec is a vertical range expressed as fractions of world height.
type BandSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RulesConfig selects between the documented behavioral variants.
type RulesConfig struct {
	EndedPolicy     string `yaml:"ended_policy"`
	CollisionTiming string `yaml:"collision_timing"`
}

// ClockConfig controls how frame deltas are fed to the simulation.
type ClockConfig struct {
	FixedStepHz float64 `yaml:"fixed_step_hz"` // 0 passes frame deltas through
	MaxFrame    float64 `yaml:"max_frame"`     // Longest pass-through step in seconds; longer frames are split (0 = no limit)
}

// BodyX returns the body's fixed horizontal position.
func (c FlappyConfig) BodyX() float64 {
	return c.World.Width * c.Body.XRatio
}

// StartY returns the body's vertical position after reset.
func (c FlappyConfig) StartY() float64 {
	return c.World.Height / c.Physics.StartHeightDivisor
}

// GroundY returns the vertical position of the ground surface.
func (c FlappyConfig) GroundY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// GapRange returns the absolute [min, max] band for gap centers.
func (c FlappyConfig) GapRange() (float64, float64) {
	return c.World.Height * c.Obstacles.GapBand.Min, c.World.Height * c.Obstacles.GapBand.Max
}
