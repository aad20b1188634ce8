package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/RuneStatus_Go/internal/event"
)

// Subscriber bridges the internal event bus to the live push hub
type Subscriber struct {
	hub   *Hub
	bus   event.Bus
	views ViewSource
}

// NewSubscriber creates a new Subscriber. When views is set, a
// player.updated push carries the view built at that push's revision. If a
// newer update has landed in between, the view is left out and the push for
// the newer revision carries it instead.
func NewSubscriber(hub *Hub, bus event.Bus, views ViewSource) *Subscriber {
	return &Subscriber{
		hub:   hub,
		bus:   bus,
		views: views,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlayerUpdated, s.handlePlayerUpdated)
	s.bus.Subscribe(event.PlayerBaselineLoaded, s.handleBaselineLoaded)

	slog.Info(LogMsgSubscribed, "types", []string{
		string(event.PlayerUpdated),
		string(event.PlayerBaselineLoaded),
	})
}

func (s *Subscriber) handlePlayerUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PlayerUpdatedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	out := PlayerUpdatedPayload{
		Kind:     payload.Kind,
		Username: payload.Username,
		Revision: payload.Revision,
	}
	// skip building a view nobody will receive
	if s.views != nil && s.hub.ClientCount() > 0 {
		if v, revision := s.views.ViewAt(ctx); revision == payload.Revision {
			out.View = &v
		}
	}

	s.broadcast(EventTypePlayerUpdated, out)
	return nil
}

func (s *Subscriber) handleBaselineLoaded(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PlayerBaselineLoadedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcast(EventTypeBaselineLoaded, BaselineLoadedPayload{
		Username:    payload.Username,
		Skills:      payload.Skills,
		CombatLevel: payload.CombatLevel,
	})
	return nil
}

func (s *Subscriber) broadcast(eventType string, payload interface{}) {
	if !s.hub.Broadcast(eventType, payload) {
		slog.Warn(LogMsgBroadcastDropped, "event_type", eventType)
		return
	}
	slog.Debug(LogMsgEventBroadcast, "event_type", eventType)
}
