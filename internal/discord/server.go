package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadHeaderTimeout for the bot's internal HTTP server
const ReadHeaderTimeout = 5 * time.Second

// StatusSource answers the questions the health endpoint asks.
type StatusSource interface {
	Connected() bool
	APIReachable(ctx context.Context) bool
}

// botStatus adapts a Bot to StatusSource.
type botStatus struct {
	bot *Bot
}

func (b botStatus) Connected() bool { return b.bot.Connected() }

func (b botStatus) APIReachable(ctx context.Context) bool {
	return b.bot.Client != nil && b.bot.Client.Healthy(ctx)
}

// HTTPServer serves the bot's health and metrics endpoints
type HTTPServer struct {
	server *http.Server
	status StatusSource
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	return newHTTPServer(port, botStatus{bot: bot})
}

func newHTTPServer(port string, status StatusSource) *HTTPServer {
	r := chi.NewRouter()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		status: status,
	}

	r.Get("/healthz", srv.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return srv
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord internal HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord internal HTTP server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord internal HTTP server shutdown failed", "error", err)
	}
}
