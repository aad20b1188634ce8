package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Player Metrics
var (
	PlayerEventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlayerEventsApplied,
			Help: HelpTextPlayerEventsApplied,
		},
		[]string{LabelKind},
	)

	PlayerUnknownEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayerUnknownEvents,
			Help: HelpTextPlayerUnknownEvents,
		},
	)

	PlayerSnapshotRevision = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerSnapshotRevision,
			Help: HelpTextPlayerSnapshotRevision,
		},
	)

	ItemDBItemsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemDBItemsLoaded,
			Help: HelpTextItemDBItemsLoaded,
		},
	)

	BaselineFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBaselineFetchTotal,
			Help: HelpTextBaselineFetchTotal,
		},
		[]string{LabelResult},
	)

	ViewCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameViewCacheRequests,
			Help: HelpTextViewCacheRequests,
		},
		[]string{LabelResult},
	)
)

// RegisterLiveClients exposes count as the live_clients gauge. Call it once
// per process; a second registration panics.
func RegisterLiveClients(count func() int) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameLiveClients,
			Help: HelpTextLiveClients,
		},
		func() float64 { return float64(count()) },
	)
}
