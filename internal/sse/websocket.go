package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/RuneStatus_Go/internal/logger"
)

// NewUpgrader returns the upgrader used for /ws. Overlay pages are served
// from arbitrary origins, so every origin is accepted.
func NewUpgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// WebSocketHandler streams the same events as Handler as JSON text frames.
// Inbound frames are read only to detect disconnects and answer pings.
func WebSocketHandler(hub *Hub, views ViewSource, upgrader *websocket.Upgrader) http.HandlerFunc {
	if upgrader == nil {
		upgrader = NewUpgrader()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the HTTP error
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		eventTypes := parseFilter(r.URL.Query().Get(QueryParamTypes))
		client := hub.Register(eventTypes)
		if client == nil {
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(WriteTimeout))
			return
		}

		log.Info(LogMsgClientConnected, "transport", "ws", "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "transport", "ws", "client_id", client.ID)
		}()

		closed := make(chan struct{})
		go readPump(conn, closed)

		write := func(event Event) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Warn(LogMsgWriteError, "transport", "ws", "error", err)
				return false
			}
			return true
		}

		if !write(connectedEvent(r.Context(), client, eventTypes, views)) {
			return
		}

		ticker := time.NewTicker(PingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
					_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(WriteTimeout))
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}

// readPump drains the connection until the peer goes away, then closes done.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(MaxInboundMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
