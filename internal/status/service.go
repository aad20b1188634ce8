// Package status serves the enriched player view on top of the aggregator.
package status

import (
	"context"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/itemdb"
	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/view"
)

// Aggregator is the part of player.Aggregator the service needs
type Aggregator interface {
	Apply(ctx context.Context, evt domain.Event) bool
	Snapshot() (domain.Snapshot, uint64)
}

// Service applies updates and serves cached player views
type Service interface {
	Apply(ctx context.Context, evt domain.Event) bool
	View(ctx context.Context) domain.PlayerView
	ViewAt(ctx context.Context) (domain.PlayerView, uint64)
	CacheStats() CacheStats
}

type service struct {
	agg   Aggregator
	names itemdb.Lookup
	cache *viewCache
}

// NewService creates a status service. names may be nil or empty, in which
// case views carry no item names.
func NewService(agg Aggregator, names itemdb.Lookup, cfg CacheConfig) Service {
	return &service{
		agg:   agg,
		names: names,
		cache: newViewCache(cfg),
	}
}

// Apply forwards evt to the aggregator
func (s *service) Apply(ctx context.Context, evt domain.Event) bool {
	return s.agg.Apply(ctx, evt)
}

// View returns the enriched view of the current snapshot. Views are shared
// between callers and must not be modified.
func (s *service) View(ctx context.Context) domain.PlayerView {
	v, _ := s.ViewAt(ctx)
	return v
}

// ViewAt is View plus the snapshot revision the view was built from.
func (s *service) ViewAt(ctx context.Context) (domain.PlayerView, uint64) {
	snap, revision := s.agg.Snapshot()

	if v, ok := s.cache.Get(revision); ok {
		return v, revision
	}

	v := view.Build(snap, s.names)
	s.cache.Set(revision, v)
	logger.FromContext(ctx).Debug(LogMsgViewBuilt, "revision", revision)
	return v, revision
}

// CacheStats reports view cache usage
func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}
