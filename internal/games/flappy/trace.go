package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Frame is one recorded frame: the taps delivered before it and its delta.
type Frame struct {
	Taps int   `json:"taps,omitempty"`
	DT   Delta `json:"dt"`
}

// Trace is everything needed to reproduce a run bit for bit.
type Trace struct {
	Seed   int64   `json:"seed"`
	Frames []Frame `json:"frames"`
}

// Record appends a frame.
func (t *Trace) Record(taps int, dt Delta) {
	t.Frames = append(t.Frames, Frame{Taps: taps, DT: dt})
}

// TapCount returns the total number of taps in the trace.
func (t Trace) TapCount() int {
	n := 0
	for _, f := range t.Frames {
		n += f.Taps
	}
	return n
}

// Replay runs the trace on a fresh engine and returns the final snapshot.
func Replay(cfg config.FlappyConfig, t Trace) (Snapshot, error) {
	e, err := New(cfg, WithSeed(t.Seed))
	if err != nil {
		return Snapshot{}, fmt.Errorf("flappy: replay: %w", err)
	}
	for _, f := range t.Frames {
		for i := 0; i < f.Taps; i++ {
			e.Tap()
		}
		e.Tick(f.DT)
	}
	return e.Snapshot(), nil
}

// SimOptions controls a headless run.
type SimOptions struct {
	Frames    int     // Frame callbacks to deliver, including the first delta-less one
	DT        float64 // Seconds per frame
	Pilot     Autopilot
	StopOnEnd bool // Stop at the first collision
	OnStep    func(StepResult)
}

// Simulate drives e like a host would: the first frame has no delta, and the
// pilot's taps are delivered between frames. It returns the recorded trace
// and the last step result. The engine must have been created with seed.
func Simulate(e *Engine, seed int64, opts SimOptions) (Trace, StepResult) {
	trace := Trace{Seed: seed}
	last := StepResult{Snapshot: e.Snapshot()}

	for i := 0; i < opts.Frames; i++ {
		taps := 0
		if i > 0 && opts.Pilot.ShouldTap(last.Snapshot) {
			e.Tap()
			taps = 1
		}

		dt := DeltaOf(opts.DT)
		if i == 0 {
			dt = NoDelta
		}
		trace.Record(taps, dt)

		last = e.Tick(dt)
		if opts.OnStep != nil {
			opts.OnStep(last)
		}
		if opts.StopOnEnd && last.Snapshot.Phase == PhaseEnded {
			break
		}
	}
	return trace, last
}
