// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the two-tab browser UI and its JSON API.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pdiddy/student-guidance/internal/logger"
	"github.com/pdiddy/student-guidance/internal/search"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// Server wraps a chi router and http.Server.
type Server struct {
	cfg          types.ServerConfig
	courses      search.CourseBackend
	universities search.UniversityBackend
	router       chi.Router
	srv          *http.Server
}

// NewServer builds the server and mounts every route.
func NewServer(cfg types.ServerConfig, courses search.CourseBackend, universities search.UniversityBackend) *Server {
	s := &Server{
		cfg:          cfg,
		courses:      courses,
		universities: universities,
	}
	s.router = s.routes()
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/", s.handleIndex)
	r.Get("/courses", s.handleCoursesPage)
	r.Get("/courses.csv", s.handleCoursesCSV)
	r.Get("/universities", s.handleUniversitiesPage)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
		r.Get("/courses", s.handleCoursesAPI)
		r.Get("/universities", s.handleUniversitiesAPI)
	})
	return r
}

// Run listens on the configured address and blocks until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info().Msg("http shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// accessLog logs method, path, status, elapsed, and bytes written with the
// request-scoped logger.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.C(ctx).Info().
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("bytes", ww.BytesWritten()).
			Msg("request done")
	})
}
