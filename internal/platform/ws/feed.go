package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Message is one frame on the wire.
type Message struct {
	Type     string          `json:"type"` // Always "frame"
	Seq      uint64          `json:"seq"`
	Snapshot flappy.Snapshot `json:"snapshot"`
	Events   []string        `json:"events,omitempty"`
	Best     int             `json:"best"`
}

// Feed plays the game with an autopilot and publishes every frame to a hub.
type Feed struct {
	engine *flappy.Engine
	pilot  flappy.Autopilot
	hub    *Hub
	fps    int
	clock  flappy.Clock
	seq    uint64
	best   int
	logger *log.Logger
}

// NewFeed creates a feed around an engine. fps <= 0 selects 30.
func NewFeed(engine *flappy.Engine, pilot flappy.Autopilot, hub *Hub, fps int, logger *log.Logger) *Feed {
	if fps <= 0 {
		fps = 30
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Feed{
		engine: engine,
		pilot:  pilot,
		hub:    hub,
		fps:    fps,
		logger: logger,
	}
}

// Step delivers one frame at the given time: the pilot may tap, the engine
// ticks and the resulting message is broadcast.
func (f *Feed) Step(now time.Time) (Message, error) {
	if f.pilot.ShouldTap(f.engine.Snapshot()) {
		f.engine.Tap()
	}
	res := f.engine.Tick(f.clock.Frame(now))

	f.seq++
	if res.Snapshot.Score > f.best {
		f.best = res.Snapshot.Score
	}

	msg := Message{
		Type:     "frame",
		Seq:      f.seq,
		Snapshot: res.Snapshot,
		Best:     f.best,
	}
	for _, ev := range res.Events {
		msg.Events = append(msg.Events, ev.Kind.String())
		if ev.Kind == flappy.EventCollided {
			f.logger.Debug("spectator game over", "score", ev.Score, "hit", ev.Collision)
		}
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return msg, fmt.Errorf("ws: cannot encode frame: %w", err)
	}
	f.hub.Broadcast(data)
	return msg, nil
}

// Run steps the feed in real time until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if _, err := f.Step(now); err != nil {
				return err
			}
		}
	}
}
