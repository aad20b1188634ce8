// @title RuneStatus API
// @version 1.0
// @description Aggregates Old School RuneScape client updates into one player view.
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/RuneStatus_Go/docs"
	"github.com/osse101/RuneStatus_Go/internal/baseline"
	"github.com/osse101/RuneStatus_Go/internal/bootstrap"
	"github.com/osse101/RuneStatus_Go/internal/config"
	"github.com/osse101/RuneStatus_Go/internal/handler"
	"github.com/osse101/RuneStatus_Go/internal/merge"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
	"github.com/osse101/RuneStatus_Go/internal/player"
	"github.com/osse101/RuneStatus_Go/internal/server"
	"github.com/osse101/RuneStatus_Go/internal/sse"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting RuneStatus",
		"username", cfg.Username,
		"environment", cfg.Environment,
		"version", handler.ResolveVersion(cfg.Version),
		"port", cfg.Port)
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx := context.Background()

	bus := bootstrap.InitializeEventSystem()
	names := bootstrap.LoadItemDB(ctx, cfg.ItemDBPath)

	loader := baseline.NewLoader(baseline.Config{
		BaseURL: cfg.HiscoresURL,
		Timeout: cfg.HiscoresTimeout,
		Retries: cfg.HiscoresRetries,
	})
	initial := bootstrap.LoadBaseline(ctx, loader, cfg.Username)

	agg := player.NewAggregator(initial, merge.NewEngine(), bus)
	svc := status.NewService(agg, names, status.CacheConfig{Size: cfg.ViewCacheSize, TTL: cfg.ViewCacheTTL})

	hub := sse.NewHub()
	hub.Start()
	metrics.RegisterLiveClients(hub.ClientCount)

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Views:    svc,
	})
	bootstrap.AnnounceBaseline(ctx, bus, initial)

	srv := server.NewServer(server.Options{
		Addr:         cfg.Addr(),
		MaxBodyBytes: cfg.MaxBodyBytes,
		ServiceName:  cfg.ServiceName,
		Version:      cfg.Version,
	}, svc, hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-sc:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Service: svc,
	})

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
