package connections

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/quillforge/quill/internal/services/status"
	"github.com/rs/zerolog/log"
)

// TimeoutConfig holds the timeout settings for status WebSocket connections
type TimeoutConfig struct {
	WriteWait time.Duration
}

// DefaultTimeouts provides sensible default timeout values
var DefaultTimeouts = TimeoutConfig{
	WriteWait: 10 * time.Second,
}

// Manager tracks status-channel WebSocket subscribers and fans status
// transitions out to them. Writes are fire-and-forget, last-writer-wins;
// a subscriber that cannot keep up is dropped.
type Manager struct {
	connections sync.Map
	timeouts    TimeoutConfig
}

// NewManager creates a new connection manager with the specified timeouts
func NewManager(timeouts TimeoutConfig) *Manager {
	return &Manager{
		timeouts: timeouts,
	}
}

// Add registers a new status subscriber
func (m *Manager) Add(conn *websocket.Conn) {
	m.connections.Store(conn, struct{}{})
}

// Remove unregisters a status subscriber
func (m *Manager) Remove(conn *websocket.Conn) {
	m.connections.Delete(conn)
}

// Count returns the current number of subscribers
func (m *Manager) Count() int {
	count := 0
	m.connections.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}

// Broadcast pushes one status update to every subscriber. Failed writes
// close and drop the subscriber; no delivery is guaranteed or retried.
func (m *Manager) Broadcast(update status.Update) {
	deadline := time.Now().Add(m.timeouts.WriteWait)

	m.connections.Range(func(key, value interface{}) bool {
		conn := key.(*websocket.Conn)

		conn.SetWriteDeadline(deadline)
		if err := conn.WriteJSON(update); err != nil {
			log.Debug().Err(err).Msg("Dropping status subscriber after failed write")
			conn.Close()
			m.connections.Delete(conn)
		}
		return true
	})
}
