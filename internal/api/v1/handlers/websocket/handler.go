package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/quillforge/quill/internal/connections"
	"github.com/quillforge/quill/internal/services/status"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The sidecar binds to localhost; editor shells connect from
		// arbitrary origins (webviews, plugins), so origin is not checked.
		return true
	},
}

// HandleStatusWebSocket upgrades the connection and subscribes it to status
// transitions. The current snapshot is pushed as the first frame so a newly
// attached status bar renders immediately.
func HandleStatusWebSocket(statusService *status.Service, manager *connections.Manager, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Status WebSocket upgrade failed")
		return
	}

	snap := statusService.Snapshot()
	if err := conn.WriteJSON(status.Update{Activity: snap.Activity, Text: snap.Text}); err != nil {
		conn.Close()
		return
	}

	manager.Add(conn)
	log.Debug().Int("subscribers", manager.Count()).Msg("Status subscriber attached")

	defer func() {
		manager.Remove(conn)
		conn.Close()
		log.Debug().Int("subscribers", manager.Count()).Msg("Status subscriber detached")
	}()

	// The channel is push-only; the read loop exists to notice the peer
	// going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("Status subscriber closed unexpectedly")
			}
			return
		}
	}
}
