package flappy

// Autopilot is a deterministic tap policy used for headless runs, the
// spectator feed and tests. It keeps the body hovering just below the
// current gap center.
type Autopilot struct {
	// Margin is how far below the gap center the body may sink before a tap.
	Margin float64
	// RestartOnEnd makes the pilot tap through the Ended phase.
	RestartOnEnd bool
}

// ShouldTap decides whether to tap given the latest snapshot.
func (a Autopilot) ShouldTap(s Snapshot) bool {
	switch s.Phase {
	case PhaseReady:
		return true
	case PhaseEnded:
		return a.RestartOnEnd
	}
	return s.Body.Velocity > 0 && s.Body.Y > s.Pipe.GapCenter+a.Margin
}
