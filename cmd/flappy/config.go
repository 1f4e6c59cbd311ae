package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
	Long: `Config files are looked up in this order:
  --config <path>
  ~/.flappy/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Files only need the keys they change.

Examples:
  flappy config dump > ~/.flappy/flappy.yaml
  flappy config check ./hard.yaml`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, source, err := config.LoadWithSource(flagConfig)
		if err != nil {
			fatal("Error: %v", err)
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fatal("Error: %v", err)
		}
		fmt.Fprintf(os.Stderr, "# source: %s\n", source)
		os.Stdout.Write(data)
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		_, err := config.Load(args[0])
		if err == nil {
			fmt.Printf("%s: ok\n", args[0])
			return
		}
		if errors.Is(err, config.ErrInvalidConfig) {
			fatal("%s: invalid\n%v", args[0], err)
		}
		fatal("Error: %v", err)
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd, configCheckCmd)
}
