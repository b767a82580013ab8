// Package server serves the landing page, the metric data views and the
// embedded assets.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lppsite/config"
	"github.com/lppsite/models"
	"github.com/lppsite/static"
)

// Server wires the router to the site content.
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	site   models.Site
	router chi.Router
	now    func() time.Time

	// OnReady, when set, is called with the listening address once the
	// listener is open.
	OnReady func(addr string)
}

// New builds the server and its routes.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:  cfg,
		log:  logger,
		site: models.DefaultSite(cfg.BookingURL),
		now:  time.Now,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5, "text/html", "text/css", "application/javascript", "application/json"))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.Get("/", s.handleLanding)
	r.Get("/metricas/{slug}", s.handleMetric)
	r.Get("/healthz", handleHealth)
	r.NotFound(s.handleNotFound)

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	addr := ln.Addr().String()
	s.log.Info("server starting", zap.String("addr", addr), zap.String("env", s.cfg.Env))
	if s.OnReady != nil {
		s.OnReady(addr)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
