package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/WarekiBot_Go/docs"
	"github.com/osse101/WarekiBot_Go/internal/config"
	"github.com/osse101/WarekiBot_Go/internal/conversion"
	"github.com/osse101/WarekiBot_Go/internal/handler"
	"github.com/osse101/WarekiBot_Go/internal/metrics"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	detector   *SuspiciousActivityDetector
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, svc conversion.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.RateLimit, cfg.RateLimitWindow, cfg.MaxTrackedIPs)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestIDMiddleware)
	// Rate limiting runs before auth so rejected keys use up the window too
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	convertHandler := handler.NewConvertHandler(svc, cfg.Lenient)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/eras", convertHandler.HandleGetEras)

		r.Post("/convert", convertHandler.HandleConvertBatch)
		r.Get("/convert/{code}", convertHandler.HandleConvert)

		r.Get("/reverse/{year}", convertHandler.HandleReverse)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		cfg:      cfg,
		detector: detector,
	}
}

// Handler returns the root handler with the full middleware stack.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Default().Info(LogMsgServerStopping, "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
