// flappy is a terminal Flappy Bird built around a deterministic simulation engine.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy serve             - Start SSH server for remote play
//	flappy watch             - Stream an autopilot game to websocket spectators
//	flappy sim               - Run a headless autopilot game
//	flappy runs list         - List recorded runs
//	flappy runs verify <id>  - Replay a recorded run and check its result
//	flappy config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Frame rate (default: 60)
//	--seed <value>   - RNG seed for reproducible gap placement
//	--config <path>  - Game config YAML
//	--db <path>      - Runs database (default: ~/.flappy/runs.db)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a deterministic Flappy Bird for your terminal",
	Long: `Flappy is a Flappy Bird clone whose simulation is fully deterministic:
every run can be recorded, stored and replayed bit for bit.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  watch    - Stream an autopilot game over websocket
  sim      - Run a headless autopilot game
  runs     - Browse, show and verify recorded runs
  config   - Inspect and validate configuration

Examples:
  flappy play
  flappy play --seed 42 --config ./hard.yaml
  flappy serve --ssh :2222
  flappy sim --frames 5000 --record
  flappy runs verify 3`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from --config and the search path.
func loadConfig() config.FlappyConfig {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		fatal("Error loading config: %v", err)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
