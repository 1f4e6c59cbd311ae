package flappy

// Phase is the game-phase state. Exactly one is active at a time.
type Phase int

const (
	PhaseReady   Phase = iota // Waiting for the first tap
	PhasePlaying              // Simulation running
	PhaseEnded                // Collision happened; waiting for a reset tap
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name for JSON feeds.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
