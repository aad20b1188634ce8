package status

import "time"

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 30 * time.Second
)

const LogMsgViewBuilt = "Player view built"
