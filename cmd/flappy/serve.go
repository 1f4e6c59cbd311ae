package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSpectate    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flappy SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own engine. Crashes are recorded to the
shared runs database with the SSH user as the source.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --spectate :8080          # Also stream an autopilot game over websocket

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Also serve the websocket spectator feed on this address")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.DBPath = flagDBPath
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.FPS = flagFPS
	sshCfg.Game = cfg

	server, err := tui.NewSSHServer(sshCfg, logger.WithPrefix("ssh"))
	if err != nil {
		fatal("Error creating server: %v", err)
	}

	if flagSpectate != "" {
		go func() {
			if err := serveSpectators(ctx, cfg, flagSpectate); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		fatal("Server error: %v", err)
	}
}
