package flappy

// Scorer is an edge-triggered comparator: it fires when the sampled pipe
// position moves from at-or-right-of the scoring line to strictly left of it.
type Scorer struct {
	line   float64
	prev   float64
	primed bool
}

// NewScorer creates a scorer for the given scoring line (the body's X).
func NewScorer(line float64) Scorer {
	return Scorer{line: line}
}

// Prime sets the previous sample without scoring, e.g. at game start or
// after a recycle moved the pipe discontinuously.
func (s *Scorer) Prime(x float64) {
	s.prev = x
	s.primed = true
}

// Observe takes the next sample and reports whether it crossed the line.
func (s *Scorer) Observe(x float64) bool {
	crossed := s.primed && s.prev >= s.line && x < s.line
	s.Prime(x)
	return crossed
}
