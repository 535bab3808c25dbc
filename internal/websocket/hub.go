package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Event is a change notification for a single todo, delivered only to
// connections authenticated as the owning user.
type Event struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	TodoID int64  `json:"todo_id,omitempty"`
}

// NewEvent creates an Event with the Type field derived from the action.
func NewEvent(action string, todoID int64) Event {
	return Event{
		Type:   fmt.Sprintf("todo_%s", action),
		Action: action,
		TodoID: todoID,
	}
}

// Hub tracks active WebSocket clients grouped by the user id they
// authenticated as.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
	logger  *slog.Logger
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client under its user id.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.clients[c.userID]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
}

// Publish sends an event to every connection owned by userID. Other users'
// connections never see it.
func (h *Hub) Publish(userID int64, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			// Client buffer full — drop the event to avoid blocking
		}
	}
}

// ClientCount returns the number of connected clients across all users.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
