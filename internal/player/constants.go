package player

const (
	LogMsgUnknownEvent = "Unknown update kind ignored"
	LogMsgEventApplied = "Update applied"
)
