package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/handler"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
	"github.com/osse101/RuneStatus_Go/internal/sse"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

// Options configures the HTTP server
type Options struct {
	Addr         string
	MaxBodyBytes int64
	ServiceName  string
	Version      string
}

type Server struct {
	httpServer *http.Server
	service    status.Service
	hub        *sse.Hub
}

// NewServer creates a new Server instance. hub may be nil, in which case the
// live-push routes are not registered.
func NewServer(opts Options, svc status.Service, hub *sse.Hub) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{service: svc, hub: hub}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(RequestLoggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(handler.HealthCheckFunc(s.checkReady)))
	r.Get(PathVersion, handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle(PathMetrics, promhttp.Handler())

	// Game client updates
	updates := handler.UpdateHandlers(svc)
	for _, kind := range domain.EventKinds {
		r.Post(handler.UpdatePath(kind), updates[kind])
	}
	r.Get(PathStatus, handler.HandleGetStatus(svc))

	if hub != nil {
		r.Get(PathEvents, sse.Handler(hub, svc))
		r.Get(PathWebSocket, sse.WebSocketHandler(hub, svc, sse.NewUpgrader()))
	}

	r.Get(PathSwagger, httpSwagger.WrapHandler)

	// Anything else the client posts is acknowledged and dropped
	r.Post(PathFallback, handler.HandleUnknownUpdate())

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) checkReady(_ context.Context) error {
	if s.service == nil {
		return errors.New(handler.ErrMsgNotReady)
	}
	return nil
}

// Start starts the server and blocks until it stops. A graceful Stop is not
// reported as an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully. Live-push streams are closed first so
// Shutdown does not wait on them.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	if s.hub != nil {
		s.hub.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
