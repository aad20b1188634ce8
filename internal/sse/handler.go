package sse

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/logger"
)

// ViewSource supplies the current player view and the snapshot revision it
// was built from.
type ViewSource interface {
	ViewAt(ctx context.Context) (domain.PlayerView, uint64)
}

// Handler returns an HTTP handler for SSE connections. views may be nil.
func Handler(hub *Hub, views ViewSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		eventTypes := parseFilter(r.URL.Query().Get(QueryParamTypes))
		client := hub.Register(eventTypes)
		if client == nil {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		log.Info(LogMsgClientConnected, "transport", "sse", "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "transport", "sse", "client_id", client.ID)
		}()

		write := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(connectedEvent(r.Context(), client, eventTypes, views)) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func connectedEvent(ctx context.Context, client *Client, filters []string, views ViewSource) Event {
	payload := ConnectedPayload{ClientID: client.ID, Filters: filters}
	if views != nil {
		v, _ := views.ViewAt(ctx)
		payload.View = &v
	}
	return Event{
		ID:        client.ID,
		Type:      EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}
