package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Enter - Flap (also starts, and resets after a crash)
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C         - Quit

Every crash is recorded to the runs database unless --no-record is given.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	var store *storage.Store
	if !flagNoRecord {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open runs database", "error", err)
		}
	}

	runErr := tui.Run(tui.Options{
		Runtime: rt,
		Game:   cfg,
		Store:  store,
		Source: "play",
		Logger: logger.WithPrefix("play"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("Error running game: %v", runErr)
	}
}
