// Package ws tracks live websocket connections by participant id.
package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const defaultWriteTimeout = 3 * time.Second

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type Hub struct {
	mu           sync.Mutex
	clients      map[string]Conn
	writeTimeout time.Duration
}

func NewHub(writeTimeout time.Duration) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &Hub{clients: make(map[string]Conn), writeTimeout: writeTimeout}
}

func (h *Hub) Add(id string, conn Conn) {
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
}

func (h *Hub) Remove(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

// Len reports the number of live connections
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to every connection. Connections that fail the
// write are closed and dropped, and their ids returned.
func (h *Hub) Broadcast(message []byte) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var dropped []string
	for id, conn := range h.clients {
		if !h.write(conn, message) {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, id)
			dropped = append(dropped, id)
		}
	}
	return dropped
}

// SendTo writes message to a single participant. It reports false if the id
// is unknown or the write failed, in which case the connection is dropped.
func (h *Hub) SendTo(id string, message []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[id]
	if !ok {
		return false
	}
	if !h.write(conn, message) {
		_ = conn.Close(websocket.StatusNormalClosure, "")
		delete(h.clients, id)
		return false
	}
	return true
}

func (h *Hub) write(conn Conn, message []byte) bool {
	ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message) == nil
}
