package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event bus metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Player metric names
const (
	MetricNamePlayerEventsApplied    = "player_events_applied_total"
	MetricNamePlayerUnknownEvents    = "player_unknown_events_total"
	MetricNamePlayerSnapshotRevision = "player_snapshot_revision"
	MetricNameItemDBItemsLoaded      = "itemdb_items_loaded"
	MetricNameBaselineFetchTotal     = "baseline_fetch_total"
	MetricNameViewCacheRequests      = "view_cache_requests_total"
	MetricNameLiveClients            = "live_clients"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event bus metric help text
const (
	HelpTextEventsPublished    = "Total number of events published on the internal bus"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Player metric help text
const (
	HelpTextPlayerEventsApplied    = "Updates folded into the player snapshot, by kind"
	HelpTextPlayerUnknownEvents    = "Updates received for an unknown kind and ignored"
	HelpTextPlayerSnapshotRevision = "Revision of the player snapshot"
	HelpTextItemDBItemsLoaded      = "Number of item names in the reference table"
	HelpTextBaselineFetchTotal     = "Hiscores baseline fetches, by result"
	HelpTextViewCacheRequests      = "Player view cache lookups, by result"
	HelpTextLiveClients            = "Connected SSE and WebSocket clients"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Label values
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
	ResultHit      = "hit"
	ResultMiss     = "miss"

	// PathUnmatched labels requests no route matched
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgInvalidPayload  = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
