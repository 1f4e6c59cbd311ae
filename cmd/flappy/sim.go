package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimFrames  int
	flagSimMargin  float64
	flagSimRestart bool
	flagSimRecord  bool
	flagSimJSON    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run the engine without a terminal, driven by the autopilot at a fixed
frame delta of 1/fps seconds. By default the run stops at the first crash.

With --record the run is stored and can later be checked with
'flappy runs verify <id>'.

Examples:
  flappy sim --seed 7
  flappy sim --frames 20000 --restart
  flappy sim --record --json`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Frame callbacks to deliver")
	simCmd.Flags().Float64Var(&flagSimMargin, "margin", 12, "Autopilot margin below the gap center")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Keep playing after a crash")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store the run in the runs database")
	simCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the final snapshot as JSON")
}

// simSummary counts what happened during a headless run.
type simSummary struct {
	Games    int
	Best     int
	Recycles int
	Final    flappy.StepResult
	Trace    flappy.Trace
}

// simulate runs one headless game for the sim command.
func simulate(cfg config.FlappyConfig, s int64, frames, fps int, pilot flappy.Autopilot, stopOnEnd bool) (simSummary, error) {
	engine, err := flappy.New(cfg, flappy.WithSeed(s))
	if err != nil {
		return simSummary{}, err
	}
	if fps <= 0 {
		fps = 60
	}

	var sum simSummary
	sum.Trace, sum.Final = flappy.Simulate(engine, s, flappy.SimOptions{
		Frames:    frames,
		DT:        1 / float64(fps),
		Pilot:     pilot,
		StopOnEnd: stopOnEnd,
		OnStep: func(r flappy.StepResult) {
			for _, ev := range r.Events {
				switch ev.Kind {
				case flappy.EventRecycled:
					sum.Recycles++
				case flappy.EventCollided:
					sum.Games++
					logger.Debug("crash", "tick", ev.Tick, "score", ev.Score, "hit", ev.Collision)
				}
			}
			if r.Snapshot.Score > sum.Best {
				sum.Best = r.Snapshot.Score
			}
		},
	})
	return sum, nil
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	s := seed()

	sum, err := simulate(cfg, s, flagSimFrames, flagFPS,
		flappy.Autopilot{Margin: flagSimMargin, RestartOnEnd: flagSimRestart}, !flagSimRestart)
	if err != nil {
		fatal("Error: %v", err)
	}
	final := sum.Final.Snapshot

	logger.Info("simulation finished",
		"seed", s,
		"frames", len(sum.Trace.Frames),
		"phase", final.Phase,
		"score", final.Score,
		"best", sum.Best,
		"crashes", sum.Games,
		"recycles", sum.Recycles,
	)

	if flagSimRecord {
		id, err := recordRun(cfg, sum.Trace, final)
		if err != nil {
			fatal("Error recording run: %v", err)
		}
		logger.Info("run recorded", "id", id)
	}

	if flagSimJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(final); err != nil {
			fatal("Error: %v", err)
		}
		return
	}
	fmt.Printf("score %d (best %d) after %d ticks, %s\n", final.Score, sum.Best, final.Tick, final.Phase)
}

// recordRun stores a finished trace with the config it ran under.
func recordRun(cfg config.FlappyConfig, trace flappy.Trace, final flappy.Snapshot) (int64, error) {
	cfgYAML, err := config.Marshal(cfg)
	if err != nil {
		return 0, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	return store.SaveRun(storage.Run{
		Source:     "sim",
		Seed:       trace.Seed,
		Score:      final.Score,
		Ticks:      final.Tick,
		ConfigYAML: string(cfgYAML),
		Trace:      trace,
	})
}
