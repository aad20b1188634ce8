package metrics

import (
	"context"

	"github.com/osse101/RuneStatus_Go/internal/event"
	"github.com/osse101/RuneStatus_Go/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the service publishes
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.PlayerUpdated, event.PlayerBaselineLoaded} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PlayerUpdated:
		payload, err := event.DecodePayload[event.PlayerUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return nil
		}
		PlayerEventsApplied.WithLabelValues(payload.Kind).Inc()
		PlayerSnapshotRevision.Set(float64(payload.Revision))

	case event.PlayerBaselineLoaded:
		BaselineFetchTotal.WithLabelValues(ResultSuccess).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
