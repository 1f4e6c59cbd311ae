package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandomSource supplies uniform values in [0, 1) for gap placement.
// *rand.Rand satisfies it; tests can inject a fixed sequence.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Pipe is the obstacle: an upper and a lower barrier sharing one horizontal
// position, placed symmetrically around GapCenter.
type Pipe struct {
	X         float64 // Left edge
	GapCenter float64 // Vertical midpoint of the opening
	Width     float64
	Height    float64 // Height of each barrier
	GapHeight float64
}

// TopRect returns the upper barrier, ending half a gap above the center.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, p.GapCenter-p.GapHeight/2-p.Height, p.Width, p.Height)
}

// BottomRect returns the lower barrier, starting half a gap below the center.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapCenter+p.GapHeight/2, p.Width, p.Height)
}

// Scroll describes one step of obstacle movement.
type Scroll struct {
	From     float64 // Position before the step
	To       float64 // Position after the step, before any recycle
	Recycled bool    // Whether the pipe was moved back to the spawn edge
}

// PipeScheduler owns the single long-lived pipe: it scrolls it left while
// running and recycles it to the right edge with a fresh gap once it has
// fully left the screen.
type PipeScheduler struct {
	pipe    Pipe
	running bool
	speed   float64
	spawnX  float64
	gapMin  float64
	gapMax  float64
	rng     RandomSource
}

// NewPipeScheduler creates a scheduler with the pipe at its spawn position.
func NewPipeScheduler(cfg config.FlappyConfig, rng RandomSource) *PipeScheduler {
	lo, hi := cfg.GapRange()
	ps := &PipeScheduler{
		pipe: Pipe{
			Width:     cfg.Obstacles.Width,
			Height:    cfg.Obstacles.Height,
			GapHeight: cfg.Obstacles.GapHeight,
		},
		speed:  cfg.Obstacles.Speed,
		spawnX: cfg.World.Width,
		gapMin: lo,
		gapMax: hi,
		rng:    rng,
	}
	ps.Reset()
	return ps
}

// Pipe returns the current obstacle geometry.
func (ps *PipeScheduler) Pipe() Pipe {
	return ps.pipe
}

// Running reports whether the pipe is moving.
func (ps *PipeScheduler) Running() bool {
	return ps.running
}

// Start begins continuous leftward motion.
func (ps *PipeScheduler) Start() {
	ps.running = true
}

// Stop freezes the pipe in place. Calling it repeatedly is harmless.
func (ps *PipeScheduler) Stop() {
	ps.running = false
}

// Reset stops the pipe, returns it to the spawn edge and draws a new gap.
func (ps *PipeScheduler) Reset() {
	ps.running = false
	ps.respawn()
}

// RecycleThreshold is the position at which the pipe has fully left the screen.
func (ps *PipeScheduler) RecycleThreshold() float64 {
	return -ps.pipe.Width
}

// Advance moves the pipe by dt seconds of travel. Reaching the recycle
// threshold respawns it at the right edge; one step recycles at most once.
func (ps *PipeScheduler) Advance(dt float64) Scroll {
	s := Scroll{From: ps.pipe.X, To: ps.pipe.X}
	if !ps.running {
		return s
	}

	ps.pipe.X -= ps.speed * dt
	s.To = ps.pipe.X

	if ps.pipe.X <= ps.RecycleThreshold() {
		ps.respawn()
		s.Recycled = true
	}
	return s
}

// respawn places the pipe at the right edge with a gap drawn from the band.
func (ps *PipeScheduler) respawn() {
	ps.pipe.X = ps.spawnX
	ps.pipe.GapCenter = ps.gapMin + ps.rng.Float64()*(ps.gapMax-ps.gapMin)
}

// GroundScroll is the endlessly wrapping ground strip.
type GroundScroll struct {
	Offset  float64 // In (-period, 0]
	period  float64
	speed   float64
	running bool
}

// NewGroundScroll creates a stopped ground strip at offset zero.
func NewGroundScroll(cfg config.FlappyConfig) GroundScroll {
	return GroundScroll{period: cfg.World.Width, speed: cfg.World.GroundSpeed}
}

// Start resumes scrolling.
func (g *GroundScroll) Start() { g.running = true }

// Stop freezes the strip. Idempotent.
func (g *GroundScroll) Stop() { g.running = false }

// Running reports whether the strip is moving.
func (g *GroundScroll) Running() bool { return g.running }

// Reset returns the strip to offset zero without changing whether it runs.
func (g *GroundScroll) Reset() { g.Offset = 0 }

// Advance scrolls by dt seconds, wrapping modulo the world width.
func (g *GroundScroll) Advance(dt float64) {
	if !g.running {
		return
	}
	g.Offset = core.Wrap(g.Offset-g.speed*dt, g.period)
}
