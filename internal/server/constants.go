package server

import "time"

const (
	DefaultMaxBodyBytes      = 1 << 20
	DefaultReadHeaderTimeout = 5 * time.Second
)

// Routes
const (
	PathStatus    = "/status"
	PathHealthz   = "/healthz"
	PathReadyz    = "/readyz"
	PathVersion   = "/version"
	PathMetrics   = "/metrics"
	PathEvents    = "/events"
	PathWebSocket = "/ws"
	PathSwagger   = "/swagger/*"
	PathFallback  = "/*"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// QuietPaths are polled by infrastructure and not logged per request
var QuietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
}

// Header redaction marker
const RedactedValue = "[REDACTED]"
