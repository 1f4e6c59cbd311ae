package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is the fallback if the embed fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:        400,
			Height:       800,
			GroundHeight: 150,
			GroundSpeed:  268,
		},
		Physics: PhysicsConfig{
			Gravity:            18,
			Jump:               -5,
			InitialVelocity:    1,
			StartHeightDivisor: 2.4,
		},
		Body: BodyConfig{
			XRatio: 0.25,
			Radius: 12,
		},
		Obstacles: ObstacleConfig{
			Width:     104,
			Height:    640,
			GapHeight: 150,
			Speed:     168, // (width + obstacle width) / 3s
			GapBand: BandSpec{
				Min: 0.25,
				Max: 0.65,
			},
		},
		Rules: RulesConfig{
			EndedPolicy:     PolicyReset,
			CollisionTiming: TimingPostRecycle,
		},
		Clock: ClockConfig{
			FixedStepHz: 0,
			MaxFrame:    0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
