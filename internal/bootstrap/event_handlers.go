package bootstrap

import (
	"log/slog"

	"github.com/osse101/RuneStatus_Go/internal/event"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
	"github.com/osse101/RuneStatus_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Views    sse.ViewSource
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// given, the live push bridge.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub == nil {
		return
	}
	sse.NewSubscriber(deps.Hub, deps.EventBus, deps.Views).Subscribe()
	slog.Info(LogMsgLivePushRegistered)
}
