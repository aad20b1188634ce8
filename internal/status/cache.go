package status

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
)

// CacheConfig sizes the view cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports view cache usage
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// viewCache keeps built views keyed by snapshot revision. A revision never
// changes meaning, so entries only leave through eviction or TTL.
type viewCache struct {
	lru    *expirable.LRU[uint64, domain.PlayerView]
	hits   atomic.Int64
	misses atomic.Int64
}

func newViewCache(cfg CacheConfig) *viewCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &viewCache{
		lru: expirable.NewLRU[uint64, domain.PlayerView](cfg.Size, nil, cfg.TTL),
	}
}

func (c *viewCache) Get(revision uint64) (domain.PlayerView, bool) {
	v, ok := c.lru.Get(revision)
	if ok {
		c.hits.Add(1)
		metrics.ViewCacheRequests.WithLabelValues(metrics.ResultHit).Inc()
	} else {
		c.misses.Add(1)
		metrics.ViewCacheRequests.WithLabelValues(metrics.ResultMiss).Inc()
	}
	return v, ok
}

func (c *viewCache) Set(revision uint64, v domain.PlayerView) {
	c.lru.Add(revision, v)
}

func (c *viewCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
