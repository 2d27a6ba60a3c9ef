// Package console provides a WebSocket developer console that drives
// the assessment engine interactively, for manual testing without a
// carrier gateway in the loop.
package console

import (
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

// ConnManager tracks the active console connections by console ID.
type ConnManager struct {
	mu     sync.RWMutex
	active map[string]*websocket.Conn
}

// NewConnManager creates a new connection manager.
func NewConnManager() *ConnManager {
	return &ConnManager{active: make(map[string]*websocket.Conn)}
}

// GetActive returns the active connection for a console ID.
func (m *ConnManager) GetActive(id string) *websocket.Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active[id]
}

// Register adds a connection, closing any previous one for the same ID.
func (m *ConnManager) Register(id string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.active[id]; ok && existing != conn {
		_ = existing.Close(websocket.StatusNormalClosure, "console replaced")
	}
	m.active[id] = conn
	slog.Info("console registered", "console_id", id)
}

// Unregister removes a connection if it is still the active one.
func (m *ConnManager) Unregister(id string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.active[id]; ok && current == conn {
		delete(m.active, id)
		slog.Info("console unregistered", "console_id", id)
	}
}
