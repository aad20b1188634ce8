package config

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvUsername        = "OSRS_USERNAME"
	EnvItemDBPath      = "ITEM_DB_PATH"
	EnvHiscoresURL     = "HISCORES_URL"
	EnvHiscoresTimeout = "HISCORES_TIMEOUT"
	EnvHiscoresRetries = "HISCORES_RETRIES"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvViewCacheSize   = "VIEW_CACHE_SIZE"
	EnvViewCacheTTL    = "VIEW_CACHE_TTL"
	EnvMaxBodyBytes    = "MAX_BODY_BYTES"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Validation limits
const (
	MaxHiscoresRetries = 10
	MaxViewCacheSize   = 4096

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgParseEnv      = "parse env"

	ErrFmtPort            = "PORT must be between 1 and 65535, got %d"
	ErrFmtHiscoresURL     = "HISCORES_URL must be an absolute http(s) url, got %q"
	ErrFmtHiscoresTimeout = "HISCORES_TIMEOUT must be positive, got %s"
	ErrFmtHiscoresRetries = "HISCORES_RETRIES must be between 0 and %d, got %d"
	ErrFmtLogFormat       = "LOG_FORMAT must be json or text, got %q"
	ErrFmtViewCacheSize   = "VIEW_CACHE_SIZE must be between 1 and %d, got %d"
	ErrFmtViewCacheTTL    = "VIEW_CACHE_TTL must be positive, got %s"
	ErrFmtMaxBodyBytes    = "MAX_BODY_BYTES must be positive, got %d"
	ErrFmtShutdownTimeout = "SHUTDOWN_TIMEOUT must be positive, got %s"
)

const (
	WarnItemDBMissing  = "ITEM_DB_PATH does not exist, item names will be null"
	WarnNoRetries      = "HISCORES_RETRIES is 0, a single failed request leaves stats empty"
	WarnShortCacheTTL  = "VIEW_CACHE_TTL is under one second, most status reads will rebuild the view"
	WarnProdTextFormat = "LOG_FORMAT is text in prod, json is easier to ingest"
)
