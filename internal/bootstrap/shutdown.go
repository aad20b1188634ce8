package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RuneStatus_Go/internal/server"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Service status.Service
}

// GracefulShutdown stops the HTTP server, which also closes live push
// streams, then logs final view cache stats. Errors are logged only.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Service != nil {
		stats := components.Service.CacheStats()
		slog.Info(LogMsgViewCacheStats, "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Size)
	}

	slog.Info(LogMsgServerStopped)
}
