package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the player-controlled entity. Its horizontal position is fixed;
// only the vertical position and velocity evolve.
type Body struct {
	X        float64 // Fixed horizontal position
	Y        float64 // Vertical position of the center (down = positive)
	Velocity float64 // Vertical velocity (negative = up)
	Radius   float64

	startY   float64
	startVel float64
	jump     float64
	gravity  float64
}

// NewBody creates a body at its reset position.
func NewBody(cfg config.FlappyConfig) Body {
	b := Body{
		X:        cfg.BodyX(),
		Radius:   cfg.Body.Radius,
		startY:   cfg.StartY(),
		startVel: cfg.Physics.InitialVelocity,
		jump:     cfg.Physics.Jump,
		gravity:  cfg.Physics.Gravity,
	}
	b.Reset()
	return b
}

// ApplyImpulse sets the velocity to the jump constant, whatever it was before.
func (b *Body) ApplyImpulse() {
	b.Velocity = b.jump
}

// Integrate advances the body by one step of dt seconds.
// Velocity is in units per second of gravity accumulation, but displacement
// is applied per step: position moves by the full velocity each call.
func (b *Body) Integrate(dt float64) {
	b.Velocity += b.gravity * dt
	b.Y += b.Velocity
}

// Reset restores the starting height and the gentle initial fall.
func (b *Body) Reset() {
	b.Y = b.startY
	b.Velocity = b.startVel
}

// Shape returns the collision circle.
func (b Body) Shape() core.Circle {
	return core.Circle{Center: core.Vec{X: b.X, Y: b.Y}, Radius: b.Radius}
}
