package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/quillforge/quill/internal/connections"
	"github.com/quillforge/quill/internal/services/status"
)

func TestStatusWebSocketPushesTransitions(t *testing.T) {
	statusService := status.NewService()
	manager := connections.NewManager(connections.DefaultTimeouts)
	statusService.Subscribe(manager.Broadcast)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleStatusWebSocket(statusService, manager, w, r)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer ws.Close()

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))

	// First frame is the current snapshot
	var frame status.Update
	if err := ws.ReadJSON(&frame); err != nil {
		t.Fatalf("Failed to read snapshot frame: %v", err)
	}
	if frame.Activity != status.ActivityReady {
		t.Errorf("Expected ready snapshot, got %q", frame.Activity)
	}
	if frame.Text != "Quill: ready" {
		t.Errorf("Unexpected snapshot text %q", frame.Text)
	}

	// wait for the subscription to land before pushing a transition
	deadline := time.Now().Add(2 * time.Second)
	for manager.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	statusService.SetActivity(status.ActivityGenerating)

	if err := ws.ReadJSON(&frame); err != nil {
		t.Fatalf("Failed to read transition frame: %v", err)
	}
	if frame.Activity != status.ActivityGenerating {
		t.Errorf("Expected generating transition, got %q", frame.Activity)
	}
}
