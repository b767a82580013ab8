package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/lppsite/components"
	"github.com/lppsite/metrics"
)

// previewParam selects a card to render in its active state, 1-based.
const previewParam = "activo"

// component adapts a gomponents node to templ so every page goes through
// templ.Handler.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.log.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "failed to render page", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// previewGrid returns a fresh grid, with the card named by ?activo= entered.
func (s *Server) previewGrid(r *http.Request) *metrics.Grid {
	grid := metrics.NewGrid()

	v := r.URL.Query().Get(previewParam)
	if v == "" {
		return grid
	}
	n, err := strconv.Atoi(v)
	if err != nil || grid.Card(n-1) == nil {
		s.log.Debug("ignoring preview parameter", zap.String(previewParam, v))
		return grid
	}
	grid.Enter(n - 1)
	return grid
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	page := components.Landing(s.site, s.previewGrid(r), s.now().Year())
	s.render(w, r, http.StatusOK, component(page))
}

func (s *Server) handleMetric(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	card, ok := metrics.NewGrid().Lookup(slug)
	if !ok {
		s.log.Debug("unknown metric", zap.String("slug", slug))
		s.handleNotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := renderMetricChart(&buf, card); err != nil {
		s.log.Error("failed to render chart", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, templ.Raw(buf.String()))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, component(components.NotFound(s.site)))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
