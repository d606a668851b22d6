// Package server exposes the pipeline and scene store over HTTP.
//
// Routes:
//
//	POST   /v1/render?format=svg           render a scene from the request body
//	POST   /v1/scenes                      store a scene
//	GET    /v1/scenes                      list stored scenes
//	GET    /v1/scenes/{id}                 fetch a stored scene
//	DELETE /v1/scenes/{id}                 delete a stored scene
//	GET    /v1/scenes/{id}/render?format=  render a stored scene
//	GET    /healthz                        liveness
//
// Render routes accept style, engine, width, height, scale, seed, randomize
// and title query parameters. Errors are JSON objects carrying a
// machine-readable code.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/shapeboard/pkg/buildinfo"
	"github.com/matzehuels/shapeboard/pkg/observability"
	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/store"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Server serves the HTTP API.
type Server struct {
	Runner       *pipeline.Runner
	Store        store.Store
	Logger       *log.Logger
	MaxBodyBytes int64
	// RenderTimeout bounds each render. Zero disables the bound.
	RenderTimeout time.Duration
}

// New creates a server. A nil store uses an in-memory store.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{
		Runner:        runner,
		Store:         st,
		Logger:        logger,
		MaxBodyBytes:  DefaultMaxBodyBytes,
		RenderTimeout: 30 * time.Second,
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/scenes", func(r chi.Router) {
			r.Post("/", s.handleCreateScene)
			r.Get("/", s.handleListScenes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetScene)
				r.Delete("/", s.handleDeleteScene)
				r.Get("/render", s.handleRenderScene)
			})
		})
	})
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr, "version", buildinfo.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs each request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		duration := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), duration)
		s.Logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
