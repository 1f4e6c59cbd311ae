package core

// Action represents a semantic input, abstracted from physical key presses.
// The engine itself only understands taps; the rest are handled by the platform.
type Action int

const (
	ActionNone  Action = iota
	ActionTap          // Space, Up, W, Enter - flap / start / reset
	ActionPause        // P - freeze frame delivery (platform only)
	ActionQuit         // Q, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
