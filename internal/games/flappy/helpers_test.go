package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// sequenceSource replays a fixed list of values, cycling when exhausted.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// newTestEngine builds an engine whose gaps always sit at the given band fraction.
func newTestEngine(t *testing.T, cfg config.FlappyConfig, gapFraction ...float64) *Engine {
	t.Helper()
	if len(gapFraction) == 0 {
		gapFraction = []float64{0.5}
	}
	e, err := New(cfg, WithRandom(&sequenceSource{values: gapFraction}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

// wideGapConfig returns a config whose gap spans nearly the whole sky, so a
// hovering body never touches a barrier.
func wideGapConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.GapHeight = 700
	cfg.Obstacles.GapBand = config.BandSpec{Min: 0.4, Max: 0.4}
	return cfg
}
