package flappy

import (
	"math"
	"time"
)

// Delta is the elapsed time handed to the engine for one frame callback.
// An invalid Delta means the host had no previous frame to measure against;
// the engine skips such frames entirely.
type Delta struct {
	Seconds float64 `json:"s"`
	Valid   bool    `json:"ok"`
}

// NoDelta is the delta of a frame with no predecessor.
var NoDelta = Delta{}

// DeltaOf wraps a measured frame duration in seconds.
func DeltaOf(seconds float64) Delta {
	return Delta{Seconds: seconds, Valid: true}
}

// Clock turns frame timestamps into deltas. The first frame after
// construction or Reset yields NoDelta.
type Clock struct {
	last    time.Time
	started bool
}

// Frame records a frame timestamp and returns the time since the previous one.
func (c *Clock) Frame(now time.Time) Delta {
	if !c.started {
		c.started = true
		c.last = now
		return NoDelta
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	return DeltaOf(d)
}

// Reset forgets the previous frame, e.g. after a pause.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// Integrator converts frame deltas into the physics steps that are run.
// With a zero step rate each frame runs as a single step of its own length,
// or as equal sub-steps no longer than maxFrame when it is longer. With a
// positive rate, deltas accumulate and are drained in fixed steps; the
// remainder carries into the next frame. No elapsed time is dropped.
type Integrator struct {
	step     float64
	maxFrame float64
	acc      float64
}

// NewIntegrator creates an integrator. stepHz <= 0 selects pass-through mode.
func NewIntegrator(stepHz, maxFrame float64) *Integrator {
	it := &Integrator{maxFrame: maxFrame}
	if stepHz > 0 {
		it.step = 1 / stepHz
	}
	return it
}

// Fixed reports whether the integrator runs fixed-size steps.
func (it *Integrator) Fixed() bool {
	return it.step > 0
}

// Pending returns the accumulated time not yet simulated.
func (it *Integrator) Pending() float64 {
	return it.acc
}

// Advance feeds one frame delta and calls fn once per physics step.
// It returns the number of steps run. Negative and non-finite deltas
// count as zero.
func (it *Integrator) Advance(dt float64, fn func(h float64)) int {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	if it.step > 0 {
		it.acc += dt
		n := 0
		for it.acc >= it.step {
			fn(it.step)
			it.acc -= it.step
			n++
		}
		return n
	}

	n := 1
	if it.maxFrame > 0 && dt > it.maxFrame {
		n = int(math.Ceil(dt / it.maxFrame))
	}
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		fn(h)
	}
	return n
}

// Reset drops any accumulated time.
func (it *Integrator) Reset() {
	it.acc = 0
}
