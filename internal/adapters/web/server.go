package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"block_explorer/internal/config"
	"block_explorer/internal/logger"
	"block_explorer/internal/metrics"
	"block_explorer/pkg/explorer"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     logger.AppLogger
}

// NewServer creates a new instance of the web server. m and gatherer may be
// nil, in which case requests are not instrumented and /metrics is not served.
func NewServer(
	service explorer.Explorer,
	appLogger logger.AppLogger,
	cfg *config.ServerConfig,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil for Server")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(service, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           NewRouter(h, m, gatherer),
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		logger:     appLogger,
	}, nil
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// NewRouter creates a new ServeMux and registers all handlers.
func NewRouter(h *HTTPHandler, m *metrics.Metrics, gatherer prometheus.Gatherer) *http.ServeMux {
	smux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc) {
		var handler http.Handler = fn
		if m != nil {
			handler = m.InstrumentHandler(pattern, handler)
		}
		smux.Handle(pattern, handler)
	}

	handle("GET /{$}", h.HandleIndex)
	handle("POST /block/previous", h.HandlePreviousBlock)
	handle("POST /block/next", h.HandleNextBlock)
	handle("POST /transactions/{hash}/select", h.HandleSelectTransaction)
	handle("GET /api/state", h.HandleGetState)
	handle("GET /api/transactions/{hash}", h.HandleGetTransaction)
	handle("GET /healthz", h.HandleHealth)

	if gatherer != nil {
		smux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	h.logger.Info("-------------------------------------")
	h.logger.Info("Available Endpoints:")
	h.logger.Info("  GET  /")
	h.logger.Info("  POST /block/previous")
	h.logger.Info("  POST /block/next")
	h.logger.Info("  POST /transactions/{hash}/select")
	h.logger.Info("  GET  /api/state")
	h.logger.Info("  GET  /api/transactions/{hash}")
	h.logger.Info("  GET  /healthz")
	if gatherer != nil {
		h.logger.Info("  GET  /metrics")
	}
	h.logger.Info("-------------------------------------")

	return smux
}
