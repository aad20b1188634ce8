package bootstrap

import (
	"context"
	"errors"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/event"
	"github.com/osse101/RuneStatus_Go/internal/itemdb"
	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
)

// BaselineLoader fetches the starting snapshot for a player
type BaselineLoader interface {
	Load(ctx context.Context, username string) (*domain.Snapshot, error)
}

// LoadItemDB loads the item name table and records its size. A missing or
// invalid file yields an empty table. The loader does the logging.
func LoadItemDB(ctx context.Context, path string) *itemdb.Table {
	table := itemdb.NewLoader().LoadOrEmpty(ctx, path)
	metrics.ItemDBItemsLoaded.Set(float64(table.Len()))
	return table
}

// LoadBaseline fetches the player's current stats. Any failure is logged and
// nil is returned so the aggregator starts empty.
func LoadBaseline(ctx context.Context, loader BaselineLoader, username string) *domain.Snapshot {
	log := logger.FromContext(ctx)

	snap, err := loader.Load(ctx, username)
	switch {
	case err == nil:
		return snap
	case errors.Is(err, domain.ErrPlayerNotFound):
		metrics.BaselineFetchTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		log.Warn(LogMsgBaselineNotFound, "username", username)
	default:
		metrics.BaselineFetchTotal.WithLabelValues(metrics.ResultError).Inc()
		log.Warn(LogMsgBaselineFailed, "username", username, "error", err)
	}
	return nil
}

// AnnounceBaseline publishes the loaded baseline once subscribers are wired.
// Nothing is published for a nil snapshot.
func AnnounceBaseline(ctx context.Context, bus event.Bus, snap *domain.Snapshot) {
	if snap == nil || snap.Stats == nil {
		return
	}
	username := snap.Stats.Username
	if snap.Username != nil {
		username = *snap.Username
	}

	evt := event.NewPlayerBaselineLoadedEvent(username, len(snap.Stats.StatChanges), snap.Stats.CombatLevel)
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgBaselineAnnounceFailed, "error", err)
	}
}
