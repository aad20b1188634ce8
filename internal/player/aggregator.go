// Package player holds the single authoritative snapshot of the tracked
// character and serializes updates to it.
package player

import (
	"context"
	"sync"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/event"
	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/merge"
)

// Aggregator owns the player snapshot. Apply calls are serialized with each
// other and with Snapshot reads, so readers never observe a half-applied
// update.
type Aggregator struct {
	mu       sync.RWMutex
	snap     domain.Snapshot
	revision uint64

	engine *merge.Engine
	bus    event.Bus
}

// NewAggregator creates an aggregator seeded with a copy of initial, or with
// an empty snapshot when initial is nil. engine defaults to merge.NewEngine()
// and bus may be nil.
func NewAggregator(initial *domain.Snapshot, engine *merge.Engine, bus event.Bus) *Aggregator {
	if engine == nil {
		engine = merge.NewEngine()
	}
	return &Aggregator{
		snap:   initial.Clone(),
		engine: engine,
		bus:    bus,
	}
}

// Apply folds evt into the snapshot and reports whether its kind was known.
// Unknown kinds are logged and leave the snapshot and revision untouched.
func (a *Aggregator) Apply(ctx context.Context, evt domain.Event) bool {
	a.mu.Lock()
	applied := a.engine.Apply(&a.snap, evt)
	if applied {
		a.revision++
	}
	revision := a.revision
	a.mu.Unlock()

	log := logger.FromContext(ctx)
	if !applied {
		if domain.IsNilEvent(evt) {
			log.Warn(LogMsgUnknownEvent, "kind", "")
		} else {
			log.Warn(LogMsgUnknownEvent, "kind", evt.Kind(), "username", evt.Player())
		}
		return false
	}

	log.Debug(LogMsgEventApplied, "kind", evt.Kind(), "username", evt.Player(), "revision", revision)
	a.publish(ctx, evt, revision)
	return true
}

// Snapshot returns a deep copy of the current snapshot and its revision.
func (a *Aggregator) Snapshot() (domain.Snapshot, uint64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap.Clone(), a.revision
}

// Revision returns the number of updates applied so far.
func (a *Aggregator) Revision() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.revision
}

func (a *Aggregator) publish(ctx context.Context, evt domain.Event, revision uint64) {
	if a.bus == nil {
		return
	}
	notification := event.NewPlayerUpdatedEvent(string(evt.Kind()), evt.Player(), revision)
	if err := a.bus.Publish(ctx, notification); err != nil {
		logger.FromContext(ctx).Error(event.LogMsgPublishFailed, "type", notification.Type, "error", err)
	}
}
