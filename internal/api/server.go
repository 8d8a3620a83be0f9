// SPDX-License-Identifier: MIT

// Package api exposes the local control surface of the companion daemon.
// Front-ends (CLI, TUI, remote widgets) talk to the core exclusively through
// this HTTP API.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/reelmate/reelmate/internal/catalog"
	"github.com/reelmate/reelmate/internal/chat"
	"github.com/reelmate/reelmate/internal/identity"
	"github.com/reelmate/reelmate/internal/log"
	"github.com/reelmate/reelmate/internal/playback"
)

// Deps carries the core components the API serves.
type Deps struct {
	Clock    *playback.Clock
	Loader   *catalog.Loader
	Chat     *chat.Channel
	Identity *identity.Store

	// Control drives play/pause and mute on the bound media element. When
	// nil, state changes are committed to the clock only.
	Control *playback.Adapter

	// TracingService enables OpenTelemetry HTTP spans when non-empty.
	TracingService string

	// RateLimitRPM is the per-IP request budget per minute. Zero disables
	// rate limiting.
	RateLimitRPM int
}

// Server is the HTTP control server.
type Server struct {
	deps   Deps
	logger zerolog.Logger
}

// New constructs a Server around the given components.
func New(deps Deps) *Server {
	return &Server{
		deps:   deps,
		logger: log.WithComponent("api"),
	}
}

// Router builds the chi router with the canonical middleware stack applied.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(Recoverer)
	r.Use(RequestID)
	r.Use(Metrics())
	if s.deps.TracingService != "" {
		r.Use(Tracing(s.deps.TracingService))
	}
	r.Use(Logging)
	if s.deps.RateLimitRPM > 0 {
		r.Use(RateLimit(s.deps.RateLimitRPM))
	}

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)

		r.Route("/playback", func(r chi.Router) {
			r.Post("/seek", s.handleSeek)
			r.Post("/state", s.handlePlaybackState)
		})

		r.Route("/movie", func(r chi.Router) {
			r.Get("/", s.handleMovie)
			r.Post("/fallback", s.handleMovieFallback)
			r.Post("/retry", s.handleMovieRetry)
		})

		r.Get("/chapters", s.handleChapters)
		r.Get("/scenes", s.handleScenes)
		r.Get("/poi", s.handlePOI)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", s.handleMessages)
			r.Post("/", s.handleSendMessage)
		})

		r.Route("/identity", func(r chi.Router) {
			r.Get("/", s.handleGetIdentity)
			r.Put("/", s.handlePutIdentity)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeNotFound(w)
	})

	return r
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func (s *Server) Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info().Str(log.FieldEvent, "server.shutdown").Msg("shutting down control server")
		return srv.Shutdown(shutdownCtx)
	}
}
