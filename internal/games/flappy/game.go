// Package flappy implements the simulation core of a Flappy Bird-style game:
// a body falling under gravity and kicked upward by taps, a scrolling gated
// obstacle, collision detection, scoring and the Ready/Playing/Ended phase
// machine. It has no rendering or input plumbing of its own beyond the
// terminal presenter in render.go.
package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Engine owns all simulation state. It accepts exactly two inputs, Tap and
// Tick, and exposes state only through Snapshot copies. It is not safe for
// concurrent use; hosts deliver taps and frames from one goroutine.
type Engine struct {
	cfg        config.FlappyConfig
	phase      Phase
	body       Body
	pipes      *PipeScheduler
	ground     GroundScroll
	scorer     Scorer
	score      int
	pending    bool // Impulse requested since the last step
	integrator *Integrator
	tick       uint64
	lastHit    CollisionKind
	events     []Event
}

// Option customizes an Engine at construction.
type Option func(*engineOptions)

type engineOptions struct {
	rng RandomSource
}

// WithSeed seeds the gap randomizer.
func WithSeed(seed int64) Option {
	return func(o *engineOptions) { o.rng = NewSeededSource(seed) }
}

// WithRandom injects the gap randomizer directly.
func WithRandom(rng RandomSource) Option {
	return func(o *engineOptions) { o.rng = rng }
}

// New validates cfg and creates an engine in the Ready phase.
// Without WithSeed or WithRandom the randomizer is seeded from the clock.
func New(cfg config.FlappyConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewSeededSource(time.Now().UnixNano())
	}

	e := &Engine{
		cfg:        cfg,
		phase:      PhaseReady,
		body:       NewBody(cfg),
		pipes:      NewPipeScheduler(cfg, o.rng),
		ground:     NewGroundScroll(cfg),
		scorer:     NewScorer(cfg.BodyX()),
		integrator: NewIntegrator(cfg.Clock.FixedStepHz, cfg.Clock.MaxFrame),
	}
	e.ground.Start()
	return e, nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Tap delivers one discrete input and returns the phase it leaves the game in.
//
//	Ready   -> Playing, impulse queued, pipe and ground start moving
//	Playing -> Playing, impulse queued
//	Ended   -> Ready with everything reset (reset policy), or straight
//	           on to Playing with an impulse queued (restart policy)
//
// The impulse itself is applied at the start of the next physics step.
func (e *Engine) Tap() Phase {
	switch e.phase {
	case PhaseReady:
		e.start()
	case PhasePlaying:
		e.pending = true
	case PhaseEnded:
		e.reset()
		if e.cfg.Rules.EndedPolicy == config.PolicyRestart {
			e.start()
		}
	}
	return e.phase
}

// Tick advances the simulation by one frame. A frame without a valid delta
// is skipped: nothing changes and buffered tap events stay queued.
func (e *Engine) Tick(dt Delta) StepResult {
	if !dt.Valid {
		return StepResult{Snapshot: e.Snapshot(), Skipped: true}
	}

	steps := e.integrator.Advance(dt.Seconds, e.step)

	events := e.events
	e.events = nil
	return StepResult{
		Snapshot: e.Snapshot(),
		Events:   events,
		Steps:    steps,
	}
}

// step runs one physics step in the fixed order: impulse, body, scroll,
// collision, score, phase transition.
func (e *Engine) step(dt float64) {
	switch e.phase {
	case PhaseReady:
		e.ground.Advance(dt)
		return
	case PhaseEnded:
		return
	}

	e.tick++

	if e.pending {
		e.body.ApplyImpulse()
		e.pending = false
		e.emit(EventImpulse, CollisionNone)
	}

	e.body.Integrate(dt)

	stale := e.pipes.Pipe()
	scroll := e.pipes.Advance(dt)
	e.ground.Advance(dt)
	if scroll.Recycled {
		e.emit(EventRecycled, CollisionNone)
	}

	geometry := e.pipes.Pipe()
	if e.cfg.Rules.CollisionTiming == config.TimingPreRecycle {
		geometry = stale
	}
	hit := DetectCollision(e.body, geometry, e.cfg.GroundY())

	// The unwrapped position keeps a pass that coincides with a recycle
	// from being lost; the recycle itself never scores.
	if e.scorer.Observe(scroll.To) {
		e.score++
		e.emit(EventScored, CollisionNone)
	}
	if scroll.Recycled {
		e.scorer.Prime(e.pipes.Pipe().X)
	}

	if hit != CollisionNone {
		e.end(hit)
	}
}

// start performs the Ready -> Playing transition.
func (e *Engine) start() {
	e.phase = PhasePlaying
	e.pending = true
	e.pipes.Start()
	e.ground.Start()
	e.scorer.Prime(e.pipes.Pipe().X)
	e.emit(EventStarted, CollisionNone)
}

// end performs the Playing -> Ended transition and halts all motion.
func (e *Engine) end(hit CollisionKind) {
	e.phase = PhaseEnded
	e.lastHit = hit
	e.pending = false
	e.pipes.Stop()
	e.ground.Stop()
	e.emit(EventCollided, hit)
}

// reset returns every entity to its initial state and the phase to Ready.
// The randomizer is not reseeded, so successive games get new gaps.
func (e *Engine) reset() {
	e.phase = PhaseReady
	e.score = 0
	e.pending = false
	e.tick = 0
	e.lastHit = CollisionNone
	e.body.Reset()
	e.pipes.Reset()
	e.ground.Reset()
	e.ground.Start()
	e.integrator.Reset()
	e.scorer = NewScorer(e.cfg.BodyX())
	e.emit(EventReset, CollisionNone)
}

func (e *Engine) emit(kind EventKind, hit CollisionKind) {
	e.events = append(e.events, Event{
		Kind:      kind,
		Tick:      e.tick,
		Score:     e.score,
		Collision: hit,
	})
}

// Snapshot returns a copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	pipe := e.pipes.Pipe()
	return Snapshot{
		Phase: e.phase,
		Score: e.score,
		Tick:  e.tick,
		Body: BodyState{
			X:        e.body.X,
			Y:        e.body.Y,
			Velocity: e.body.Velocity,
			Radius:   e.body.Radius,
			Tilt:     Tilt(e.body.Velocity, e.cfg.Physics.Jump, e.cfg.Physics.Gravity),
		},
		Pipe: PipeState{
			X:         pipe.X,
			GapCenter: pipe.GapCenter,
			Top:       pipe.TopRect(),
			Bottom:    pipe.BottomRect(),
		},
		GroundOffset: e.ground.Offset,
		GroundY:      e.cfg.GroundY(),
		World:        core.Vec{X: e.cfg.World.Width, Y: e.cfg.World.Height},
		LastHit:      e.lastHit,
		RestartOnTap: e.cfg.Rules.EndedPolicy == config.PolicyRestart,
	}
}
