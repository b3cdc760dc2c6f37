package notify

import (
	"encoding/json"
	"log/slog"

	"sport-tracker-api/pkg/events"
	"sport-tracker-api/websocket"
)

// Notifier is the minimal interface mutation handlers use to tell open
// dashboards that state moved.
type Notifier interface {
	StateChanged(scope string)
}

// WSNotifier implements Notifier using a WebSocket Hub.
type WSNotifier struct {
	Hub *websocket.Hub
}

// StateChanged serializes the event as JSON and broadcasts it to every
// connected dashboard.
func (n *WSNotifier) StateChanged(scope string) {
	if n == nil || n.Hub == nil {
		return
	}
	payload, err := json.Marshal(events.NewStateChanged(scope))
	if err != nil {
		slog.Error("failed to marshal state event", "err", err)
		return
	}
	n.Hub.Broadcast(payload)
}
