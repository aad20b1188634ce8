package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often idle SSE streams get a keepalive event
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout bounds a single websocket write
	WriteTimeout = 10 * time.Second

	// PongTimeout is how long a websocket peer may stay silent
	PongTimeout = 60 * time.Second

	// PingInterval must be shorter than PongTimeout
	PingInterval = PongTimeout * 9 / 10

	// MaxInboundMessageBytes caps frames read from websocket clients
	MaxInboundMessageBytes = 4096
)

// Event types pushed to live clients
const (
	// EventTypePlayerUpdated is sent after every applied update
	EventTypePlayerUpdated = "player.updated"

	// EventTypeBaselineLoaded is sent once the hiscores baseline is in place
	EventTypeBaselineLoaded = "player.baseline_loaded"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes selects a comma-separated event type filter
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Live client connected"
	LogMsgClientDisconnected = "Live client disconnected"
	LogMsgEventBroadcast     = "Broadcasting live event"
	LogMsgBroadcastDropped   = "Broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write live event"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgInvalidPayload     = "Invalid event payload for live push"
	LogMsgSubscribed         = "Live push subscribed to event types"
)
