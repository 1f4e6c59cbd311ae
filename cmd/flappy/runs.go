package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ErrReplayMismatch is returned when a replay does not reproduce a stored run.
var ErrReplayMismatch = errors.New("replay mismatch")

var (
	flagRunsTop   bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse, show and verify recorded runs",
	Long: `Recorded runs store the seed, the config and every frame's taps and
delta, so the engine can replay them exactly.

Examples:
  flappy runs list --top
  flappy runs browse
  flappy runs show 12
  flappy runs verify 12`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		store := openStore()
		defer store.Close()

		var (
			runs []storage.RunSummary
			err  error
		)
		if flagRunsTop {
			runs, err = store.TopRuns(flagRunsLimit)
		} else {
			runs, err = store.RecentRuns(flagRunsLimit)
		}
		if err != nil {
			fatal("Error: %v", err)
		}
		fmt.Println(tui.RenderRunsTable(runs))

		if stats, err := store.GetStats(); err == nil && stats.Runs > 0 {
			fmt.Printf("\n%d runs, best %d, average %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
		}
	},
}

var runsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse recorded runs interactively",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		store := openStore()
		defer store.Close()

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}

		id, err := tui.BrowseRuns(store, width, height)
		if err != nil {
			fatal("Error: %v", err)
		}
		if id != 0 {
			showRun(store, id)
		}
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded run",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		showRun(store, parseRunID(args[0]))
	},
}

var runsVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Replay a recorded run and compare the result",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()

		id := parseRunID(args[0])
		run := getRun(store, id)

		final, err := verifyRun(run)
		if err != nil {
			fatal("Run %d: %v", id, err)
		}
		fmt.Printf("Run %d verified: score %d after %d ticks (%s)\n", id, final.Score, final.Tick, final.LastHit)
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		if err := store.DeleteRun(parseRunID(args[0])); err != nil {
			fatal("Error: %v", err)
		}
	},
}

func init() {
	runsListCmd.Flags().BoolVar(&flagRunsTop, "top", false, "Order by score instead of date")
	runsListCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to list")

	runsCmd.AddCommand(runsListCmd, runsBrowseCmd, runsShowCmd, runsVerifyCmd, runsDeleteCmd)
}

// verifyRun replays a stored run under its stored config and checks that it
// reproduces the recorded score and tick count.
func verifyRun(run *storage.Run) (flappy.Snapshot, error) {
	cfg, err := config.Parse([]byte(run.ConfigYAML))
	if err != nil {
		return flappy.Snapshot{}, fmt.Errorf("stored config: %w", err)
	}
	if run.Trace.Seed != run.Seed {
		return flappy.Snapshot{}, fmt.Errorf("%w: trace seed %d, run seed %d", ErrReplayMismatch, run.Trace.Seed, run.Seed)
	}

	final, err := flappy.Replay(cfg, run.Trace)
	if err != nil {
		return flappy.Snapshot{}, err
	}
	if final.Score != run.Score || final.Tick != run.Ticks {
		return final, fmt.Errorf("%w: replay scored %d in %d ticks, recorded %d in %d",
			ErrReplayMismatch, final.Score, final.Tick, run.Score, run.Ticks)
	}
	return final, nil
}

func showRun(store *storage.Store, id int64) {
	run := getRun(store, id)
	fmt.Printf("Run %d\n", run.ID)
	fmt.Printf("  source:  %s\n", run.Source)
	fmt.Printf("  date:    %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  seed:    %d\n", run.Seed)
	fmt.Printf("  score:   %d\n", run.Score)
	fmt.Printf("  ticks:   %d\n", run.Ticks)
	fmt.Printf("  frames:  %d (%d taps)\n", len(run.Trace.Frames), run.Trace.TapCount())
	fmt.Printf("\nconfig:\n%s", run.ConfigYAML)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("Error: %v", err)
	}
	return store
}

func getRun(store *storage.Store, id int64) *storage.Run {
	run, err := store.GetRun(id)
	if err != nil {
		fatal("Error: %v", err)
	}
	if run == nil {
		fatal("Error: no run with id %d", id)
	}
	return run
}

func parseRunID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fatal("Error: invalid run id %q", arg)
	}
	return id
}
