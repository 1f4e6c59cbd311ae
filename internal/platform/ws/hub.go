// Package ws streams engine snapshots to websocket spectators.
// A Feed drives one autopilot engine in real time; every connected client
// receives each frame as a JSON text message.
package ws

import (
	"sync"

	"github.com/charmbracelet/log"
)

// sendBuffer is how many frames may queue for one client before frames drop.
const sendBuffer = 32

// client is one connected spectator.
type client struct {
	send chan []byte
}

// Hub fans encoded frames out to connected clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	dropped uint64
	logger  *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// subscribe registers a client. The latest frame, if any, is queued first so
// a new spectator sees the current state before the next broadcast.
func (h *Hub) subscribe() *client {
	c := &client{send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.latest != nil {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
	return c
}

// unsubscribe removes a client and closes its queue. Safe to call twice.
func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Broadcast queues data for every client. Clients whose queue is full miss
// this frame rather than stalling the feed.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow clients.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
