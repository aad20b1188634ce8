package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeyKind = "kind"
)

// Log message constants
const (
	LogMsgPublishFailed = "Event publish failed"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
