package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is an immutable copy of everything a presenter needs for one frame.
type Snapshot struct {
	Phase        Phase         `json:"phase"`
	Score        int           `json:"score"`
	Tick         uint64        `json:"tick"` // Physics steps run while playing
	Body         BodyState     `json:"body"`
	Pipe         PipeState     `json:"pipe"`
	GroundOffset float64       `json:"groundOffset"`
	GroundY      float64       `json:"groundY"`
	World        core.Vec      `json:"world"` // Width, height
	LastHit      CollisionKind `json:"lastHit"`
	RestartOnTap bool          `json:"restartOnTap"` // A tap while Ended starts play at once
}

// BodyState is the presenter's view of the body.
type BodyState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Velocity float64 `json:"velocity"`
	Radius   float64 `json:"radius"`
	Tilt     float64 `json:"tilt"`
}

// PipeState is the presenter's view of the obstacle.
type PipeState struct {
	X         float64   `json:"x"`
	GapCenter float64   `json:"gapCenter"`
	Top       core.Rect `json:"top"`
	Bottom    core.Rect `json:"bottom"`
}

// EventKind identifies something that happened during a tap or tick.
type EventKind int

const (
	EventStarted        EventKind = iota // Ready -> Playing
	EventImpulse                         // Pending impulse applied to the body
	EventScored                          // Pipe crossed the body line
	EventRecycled                        // Pipe respawned at the right edge
	EventCollided                        // Playing -> Ended
	EventReset                           // Ended -> Ready (entities reset)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventImpulse:
		return "impulse"
	case EventScored:
		return "scored"
	case EventRecycled:
		return "recycled"
	case EventCollided:
		return "collided"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a single occurrence, stamped with the step it happened on.
type Event struct {
	Kind      EventKind
	Tick      uint64
	Score     int           // Score after the event
	Collision CollisionKind // Set for EventCollided
}

// StepResult is returned by Engine.Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event // Events since the previous tick, taps included, in order
	Steps    int     // Physics steps run for this frame
	Skipped  bool    // The frame carried no delta and changed nothing
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
