package flappy

// CollisionKind identifies what the body hit.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionGround
	CollisionPipe
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// DetectCollision tests the body against the ground line and both barriers
// of the pipe. It is a pure predicate over the geometry it is given.
// The ground is hit once the center passes below groundY; barriers are hit
// when the closest point of a rectangle lies within the radius, tangency included.
func DetectCollision(body Body, pipe Pipe, groundY float64) CollisionKind {
	if body.Y > groundY {
		return CollisionGround
	}

	shape := body.Shape()
	if shape.Intersects(pipe.TopRect()) || shape.Intersects(pipe.BottomRect()) {
		return CollisionPipe
	}
	return CollisionNone
}

// MarshalText encodes the collision kind by name for JSON feeds.
func (k CollisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
