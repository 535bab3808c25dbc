package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
)

func newTestClient(hub *Hub, userID int64) *Client {
	return &Client{
		hub:    hub,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestPublishOnlyReachesOwner(t *testing.T) {
	hub := NewHub(slog.Default())

	a := newTestClient(hub, 1)
	b := newTestClient(hub, 2)
	hub.Register(a)
	hub.Register(b)

	hub.Publish(1, NewEvent("created", 10))

	select {
	case data := <-a.send:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if ev.Type != "todo_created" {
			t.Errorf("type = %q, want %q", ev.Type, "todo_created")
		}
		if ev.TodoID != 10 {
			t.Errorf("todo_id = %d, want 10", ev.TodoID)
		}
	default:
		t.Fatal("owner received no event")
	}

	select {
	case <-b.send:
		t.Fatal("event leaked to another user's client")
	default:
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub(slog.Default())

	c := newTestClient(hub, 1)
	hub.Register(c)
	if hub.ClientCount() != 1 {
		t.Fatalf("client count = %d, want 1", hub.ClientCount())
	}

	hub.Unregister(c)
	if hub.ClientCount() != 0 {
		t.Errorf("client count = %d, want 0", hub.ClientCount())
	}

	if _, ok := <-c.send; ok {
		t.Error("send channel still open after unregister")
	}

	// Publishing to a user with no clients must not panic.
	hub.Publish(1, NewEvent("deleted", 5))
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(slog.Default())

	c := newTestClient(hub, 1)
	hub.Register(c)

	for i := 0; i < sendBufferSize+5; i++ {
		hub.Publish(1, NewEvent("updated", int64(i)))
	}

	if len(c.send) != sendBufferSize {
		t.Errorf("buffered = %d, want %d", len(c.send), sendBufferSize)
	}
}
