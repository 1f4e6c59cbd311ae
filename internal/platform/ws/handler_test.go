package ws

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// wireFrame mirrors Message with enums decoded as their names.
type wireFrame struct {
	Type     string   `json:"type"`
	Seq      uint64   `json:"seq"`
	Events   []string `json:"events"`
	Snapshot struct {
		Phase string `json:"phase"`
		Tick  uint64 `json:"tick"`
		Score int    `json:"score"`
		Body  struct {
			Y float64 `json:"y"`
		} `json:"body"`
	} `json:"snapshot"`
}

func newTestFeed(t *testing.T) (*Feed, *Hub) {
	t.Helper()
	engine, err := flappy.New(config.DefaultFlappyConfig(), flappy.WithSeed(3))
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	logger := log.New(io.Discard)
	hub := NewHub(logger)
	return NewFeed(engine, flappy.Autopilot{Margin: 10, RestartOnEnd: true}, hub, 60, logger), hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) wireFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	msgType, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Fatalf("message type = %d, expected text", msgType)
	}
	var f wireFrame
	if err := json.Unmarshal(payload, &f); err != nil {
		t.Fatalf("malformed frame %s: %v", payload, err)
	}
	return f
}

func TestSpectatorReceivesFrames(t *testing.T) {
	feed, hub := newTestFeed(t)
	srv := httptest.NewServer(NewMux(NewHandler(hub, HandlerConfig{Logger: log.New(io.Discard)})))
	t.Cleanup(srv.Close)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := feed.Step(t0); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	conn := dial(t, srv)

	// The latest frame is replayed on connect.
	first := readFrame(t, conn)
	if first.Type != "frame" || first.Seq != 1 {
		t.Errorf("first frame = %+v", first)
	}
	if first.Snapshot.Phase != "playing" {
		t.Errorf("Phase = %q, expected the pilot to have started the game", first.Snapshot.Phase)
	}

	if _, err := feed.Step(t0.Add(16 * time.Millisecond)); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	second := readFrame(t, conn)
	if second.Seq != 2 || second.Snapshot.Tick != 1 {
		t.Errorf("second frame = %+v", second)
	}
	// The tap from the skipped first frame is flushed with the first real step.
	if strings.Join(second.Events, ",") != "started,impulse" {
		t.Errorf("Events = %v, expected [started impulse]", second.Events)
	}
}

func TestSpectatorsShareOneGame(t *testing.T) {
	feed, hub := newTestFeed(t)
	srv := httptest.NewServer(NewMux(NewHandler(hub, HandlerConfig{Logger: log.New(io.Discard)})))
	t.Cleanup(srv.Close)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feed.Step(t0)

	a := dial(t, srv)
	b := dial(t, srv)
	readFrame(t, a)
	readFrame(t, b)

	feed.Step(t0.Add(20 * time.Millisecond))
	fa, fb := readFrame(t, a), readFrame(t, b)
	if fa.Seq != fb.Seq || fa.Snapshot.Body.Y != fb.Snapshot.Body.Y {
		t.Errorf("clients diverged: %+v vs %+v", fa, fb)
	}
	if hub.Clients() != 2 {
		t.Errorf("Clients() = %d, expected 2", hub.Clients())
	}
}

func TestHubDropsForSlowClients(t *testing.T) {
	hub := NewHub(log.New(io.Discard))
	c := hub.subscribe()

	for i := 0; i < sendBuffer+5; i++ {
		hub.Broadcast([]byte("x"))
	}
	if hub.Dropped() != 5 {
		t.Errorf("Dropped() = %d, expected 5", hub.Dropped())
	}

	hub.unsubscribe(c)
	hub.unsubscribe(c)
	if hub.Clients() != 0 {
		t.Errorf("Clients() = %d after unsubscribe", hub.Clients())
	}
}

func TestHealthz(t *testing.T) {
	_, hub := newTestFeed(t)
	srv := httptest.NewServer(NewMux(NewHandler(hub, HandlerConfig{})))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
