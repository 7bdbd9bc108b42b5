// Package events pushes server-side changes to connected dashboards over
// WebSocket. Preference writes and finished imports are broadcast so every
// open tab converges without polling.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vitorsp/perfboard/internal/logger"
)

// Event types pushed to clients.
const (
	TypePreferenceChanged = "PREFERENCE_CHANGED"
	TypeImportStarted     = "IMPORT_STARTED"
	TypeImportFinished    = "IMPORT_FINISHED"
	TypeImportFailed      = "IMPORT_FAILED"
)

// Event is the wire envelope for a broadcast message.
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// Publisher is the broadcast side of the hub, the only part jobs and
// services need.
type Publisher interface {
	Publish(event Event)
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected WebSocket clients and fans events out to them.
type Hub struct {
	upgrader websocket.Upgrader
	clients  map[string]*client
	mu       sync.Mutex
	log      *logger.Logger
}

var _ Publisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Single-user app served from the same origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
		log:     logger.Default().WithPrefix("events"),
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Info("client connected: id=%s, total=%d", c.id, count)

	go h.writeLoop(c)
	h.readLoop(c)
}

// writeLoop drains the client's send queue. A failed write drops the client.
func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Debug("write failed for client %s: %v", c.id, err)
			h.remove(c)
			return
		}
	}
}

// readLoop discards inbound frames; the hub is broadcast-only. It exists to
// notice the close handshake.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	_ = c.conn.Close()
	h.log.Info("client disconnected: id=%s, total=%d", c.id, count)
}

// Publish serializes the event and queues it to every connected client.
// Clients with a full send queue are skipped rather than blocking the
// publisher.
func (h *Hub) Publish(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to marshal event %s: %v", event.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.log.Warn("dropping event %s for slow client %s", event.Type, c.id)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		h.remove(c)
	}
}
