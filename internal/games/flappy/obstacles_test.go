package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestPipeRects(t *testing.T) {
	p := Pipe{X: 50, GapCenter: 360, Width: 104, Height: 640, GapHeight: 150}

	top := p.TopRect()
	if top.Bottom() != 285 || top.H != 640 || top.X != 50 || top.W != 104 {
		t.Errorf("TopRect = %+v, expected bottom edge at 285", top)
	}
	bottom := p.BottomRect()
	if bottom.Y != 435 || bottom.H != 640 {
		t.Errorf("BottomRect = %+v, expected top edge at 435", bottom)
	}
	if bottom.Y-top.Bottom() != p.GapHeight {
		t.Errorf("gap = %v, expected %v", bottom.Y-top.Bottom(), p.GapHeight)
	}
}

func TestPipeSchedulerSpawnsInsideBand(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	lo, hi := cfg.GapRange()

	for _, seed := range []int64{1, 2, 3, 42, 1 << 40} {
		ps := NewPipeScheduler(cfg, NewSeededSource(seed))
		ps.Start()
		for i := 0; i < 20; i++ {
			p := ps.Pipe()
			if p.GapCenter < lo || p.GapCenter > hi {
				t.Fatalf("seed %d: gap center %v outside [%v, %v]", seed, p.GapCenter, lo, hi)
			}
			for !ps.Advance(0.1).Recycled {
			}
		}
	}
}

func TestPipeSchedulerRecycle(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ps := NewPipeScheduler(cfg, &sequenceSource{values: []float64{0, 1}})
	ps.Start()

	if got := ps.Pipe().GapCenter; got != 200 {
		t.Errorf("first gap = %v, expected 200", got)
	}

	// 504 units of travel puts the right edge exactly at the screen edge.
	s := ps.Advance(3)
	if !s.Recycled {
		t.Fatalf("Advance = %+v, expected a recycle at the threshold", s)
	}
	if s.From != 400 || s.To != -104 {
		t.Errorf("Scroll = %+v, expected 400 -> -104", s)
	}
	p := ps.Pipe()
	if p.X != 400 {
		t.Errorf("X = %v after recycle, expected 400", p.X)
	}
	if p.GapCenter != 520 {
		t.Errorf("gap = %v after recycle, expected 520", p.GapCenter)
	}
}

func TestPipeSchedulerStopped(t *testing.T) {
	ps := NewPipeScheduler(config.DefaultFlappyConfig(), NewSeededSource(1))

	if s := ps.Advance(1); s.To != s.From || s.Recycled {
		t.Errorf("stopped scheduler moved: %+v", s)
	}

	ps.Start()
	ps.Advance(0.5)
	x := ps.Pipe().X
	ps.Stop()
	ps.Stop()
	if ps.Running() {
		t.Error("Running() after Stop")
	}
	ps.Advance(0.5)
	if ps.Pipe().X != x {
		t.Errorf("X = %v after Stop, expected %v", ps.Pipe().X, x)
	}
}

func TestPipeSchedulerReset(t *testing.T) {
	ps := NewPipeScheduler(config.DefaultFlappyConfig(), &sequenceSource{values: []float64{0.5, 0.25}})
	ps.Start()
	ps.Advance(1)

	ps.Reset()
	if ps.Running() {
		t.Error("Reset should stop the scheduler")
	}
	if p := ps.Pipe(); p.X != 400 || p.GapCenter != 280 {
		t.Errorf("Pipe = %+v after Reset, expected X 400 gap 280", p)
	}
}

func TestGroundScroll(t *testing.T) {
	g := NewGroundScroll(config.DefaultFlappyConfig())

	g.Advance(1)
	if g.Offset != 0 {
		t.Errorf("stopped ground moved to %v", g.Offset)
	}

	g.Start()
	for i := 0; i < 500; i++ {
		g.Advance(0.016)
		if g.Offset > 0 || g.Offset <= -400 {
			t.Fatalf("Offset = %v outside (-400, 0]", g.Offset)
		}
	}

	g.Stop()
	off := g.Offset
	g.Advance(1)
	if g.Offset != off {
		t.Error("ground moved after Stop")
	}

	g.Reset()
	if g.Offset != 0 || g.Running() {
		t.Errorf("after Reset: offset %v running %v", g.Offset, g.Running())
	}
}
