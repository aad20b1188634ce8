package bootstrap

// Log messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLivePushRegistered         = "Live push subscriber registered"
	LogMsgBaselineNotFound           = "Player not found on hiscores, starting with empty stats"
	LogMsgBaselineFailed             = "Failed to fetch baseline stats, starting with empty stats"
	LogMsgBaselineAnnounceFailed     = "Failed to publish baseline event"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgViewCacheStats             = "View cache stats"
	LogMsgServerStopped              = "Server stopped"
)
