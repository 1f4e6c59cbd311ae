package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func simulatedRun(t *testing.T) *storage.Run {
	t.Helper()
	cfg := config.DefaultFlappyConfig()

	sum, err := simulate(cfg, 5, 3000, 60, flappy.Autopilot{Margin: 12}, true)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if sum.Final.Snapshot.Phase == flappy.PhaseReady {
		t.Fatal("autopilot never started the game")
	}

	cfgYAML, err := config.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	return &storage.Run{
		Source:     "sim",
		Seed:       5,
		Score:      sum.Final.Snapshot.Score,
		Ticks:      sum.Final.Snapshot.Tick,
		ConfigYAML: string(cfgYAML),
		Trace:      sum.Trace,
	}
}

func TestVerifyRun(t *testing.T) {
	run := simulatedRun(t)

	final, err := verifyRun(run)
	if err != nil {
		t.Fatalf("verifyRun() failed: %v", err)
	}
	if final.Score != run.Score || final.Tick != run.Ticks {
		t.Errorf("final = %+v, expected score %d at tick %d", final, run.Score, run.Ticks)
	}
}

func TestVerifyRunMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*storage.Run)
	}{
		{"score", func(r *storage.Run) { r.Score++ }},
		{"ticks", func(r *storage.Run) { r.Ticks += 3 }},
		{"seed", func(r *storage.Run) { r.Seed++ }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			run := simulatedRun(t)
			tc.mutate(run)
			if _, err := verifyRun(run); !errors.Is(err, ErrReplayMismatch) {
				t.Errorf("verifyRun() error = %v, expected ErrReplayMismatch", err)
			}
		})
	}
}

func TestVerifyRunInvalidConfig(t *testing.T) {
	run := simulatedRun(t)
	run.ConfigYAML = "physics:\n  gravity: -1\n"

	_, err := verifyRun(run)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("verifyRun() error = %v, expected ErrInvalidConfig", err)
	}
}
