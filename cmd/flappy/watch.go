package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/ws"
)

var (
	flagWatchAddr   string
	flagWatchMargin float64
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream an autopilot game to websocket spectators",
	Long: `Run one autopilot game in real time and publish every frame as JSON
to all clients connected at /ws. The game restarts after each crash.

Examples:
  flappy watch
  flappy watch --addr :9000 --fps 30
  websocat ws://localhost:8080/ws`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", ":8080", "HTTP address for the spectator feed")
	watchCmd.Flags().Float64Var(&flagWatchMargin, "margin", 12, "Autopilot margin below the gap center")
}

func runWatch(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serveSpectators(ctx, cfg, flagWatchAddr); err != nil {
		fatal("Error: %v", err)
	}
}

// serveSpectators runs the autopilot feed and its HTTP server until ctx is done.
func serveSpectators(ctx context.Context, cfg config.FlappyConfig, addr string) error {
	s := seed()
	engine, err := flappy.New(cfg, flappy.WithSeed(s))
	if err != nil {
		return err
	}

	log := logger.WithPrefix("watch")
	hub := ws.NewHub(log)
	defer hub.Close()

	feed := ws.NewFeed(engine, flappy.Autopilot{Margin: flagWatchMargin, RestartOnEnd: true}, hub, flagFPS, log)
	srv := &http.Server{
		Addr:              addr,
		Handler:           ws.NewMux(ws.NewHandler(hub, ws.HandlerConfig{Logger: log})),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		errc <- feed.Run(ctx)
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("watch: %w", err)
		}
	}()

	log.Info("spectator feed listening", "address", addr, "seed", s)

	select {
	case <-ctx.Done():
	case err := <-errc:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
