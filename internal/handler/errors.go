package handler

// Client-facing error messages. Internal error details are never echoed back.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgNotReady              = "service not ready"

	ErrMsgFieldRequired = "This field is required"
	ErrMsgFieldRSN      = "Must be a valid RuneScape name"
	ErrMsgFieldMax      = "Must be at most %s"
	ErrMsgFieldMin      = "Must be at least %s"
	ErrMsgFieldInvalid  = "Invalid value"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode %s request"
	LogMsgDecoded          = "%s request decoded"
	LogMsgValidationFailed = "Invalid %s request"
	LogMsgUpdateApplied    = "Player update applied"
	LogMsgUpdateIgnored    = "Player update ignored"
	LogMsgUnknownUpdate    = "unknown update type"
	LogMsgReadyCheckFailed = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
)

// MaxLoggedPayloadBytes caps how much of an unknown update body is logged
const MaxLoggedPayloadBytes = 4 << 10

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
