// Package server exposes the keyword research form over HTTP. A cookie ties
// each browser to one submission controller, so a second submit from the same
// browser while a search is loading is suppressed and shows the progress
// view. The form itself round-trips through the page on every post.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-keywordform/internal/logging"
	"github.com/goliatone/go-keywordform/pkg/form"
	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/renderers/vanilla"
	"github.com/goliatone/go-keywordform/pkg/session"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/tags"
	"github.com/goliatone/go-keywordform/pkg/transport"
	"github.com/goliatone/go-keywordform/pkg/view"
)

// Form inputs that are not FormState fields.
const (
	inputPending = "keyword_input"
	inputRemove  = "remove_keyword"
)

var plainFields = []string{
	form.FieldBrandWebsite,
	form.FieldCompetitorWebsite,
	form.FieldLocation,
	form.FieldMinSearchVolume,
	form.FieldShoppingAdsBudget,
	form.FieldSearchAdsBudget,
	form.FieldPMaxAdsBudget,
}

// HealthChecker reports the keyword research service health.
type HealthChecker interface {
	Health(ctx context.Context) (transport.Health, error)
}

// Deps are the collaborators of a Server.
type Deps struct {
	Transport submission.Transport
	Catalog   *locations.Catalog
	Renderer  *vanilla.Renderer
	Logger    zerolog.Logger
	Registry  *prometheus.Registry
	Health    HealthChecker
	ViewOpts  []view.Option
	// SessionTTL bounds how long an idle browser session is kept.
	// DefaultSessionTTL applies when zero.
	SessionTTL time.Duration
}

// Server serves the form pages.
type Server struct {
	deps     Deps
	metrics  *Metrics
	sessions *sessionStore
}

// New validates deps and registers metrics.
func New(deps Deps) (*Server, error) {
	if deps.Transport == nil {
		return nil, submission.ErrNilTransport
	}
	if deps.Catalog == nil {
		return nil, errors.New("server: location catalog is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	s := &Server{deps: deps}
	s.sessions = newSessionStore(deps.SessionTTL, s.newController)
	metrics, err := NewMetrics(deps.Registry, s.sessions.Len)
	if err != nil {
		return nil, err
	}
	s.metrics = metrics
	return s, nil
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(requestLogger(s.deps.Logger))

	mux.Get("/", s.handleIndex)
	mux.Post("/", s.handleSubmit)
	mux.Post("/keywords", s.handleKeywords)
	mux.Get("/locations", s.handleLocations)
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Get("/readyz", s.handleReady)
	mux.Handle("/metrics", promhttp.HandlerFor(s.deps.Registry, promhttp.HandlerOpts{}))
	return mux
}

// handleIndex shows the browser's last form and lifecycle, or a fresh form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entry, err := s.sessions.Acquire(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts := []session.Option{session.WithViewOptions(s.deps.ViewOpts...)}
	if state, ok := entry.Form(); ok {
		opts = append(opts, session.WithInitialForm(state))
	}
	s.renderPage(w, r, entry, session.New(entry.controller, opts...))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	entry, sess, err := s.hydrate(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !sess.CanSubmit() {
		s.metrics.Suppressed()
		s.renderPage(w, r, entry, sess)
		return
	}

	started := time.Now()
	err = sess.Submit(r.Context())
	switch {
	case errors.Is(err, submission.ErrInFlight), errors.Is(err, submission.ErrLocationRequired):
		s.metrics.Suppressed()
	case err != nil:
		s.deps.Logger.Warn().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("submission failed")
		s.metrics.ObserveDuration(time.Since(started))
	default:
		s.metrics.ObserveDuration(time.Since(started))
	}
	s.renderPage(w, r, entry, sess)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	entry, sess, err := s.hydrate(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	editor := sess.Keywords()
	if raw := r.PostForm.Get(inputRemove); raw != "" {
		if idx, convErr := strconv.Atoi(raw); convErr == nil {
			editor.Remove(idx)
		}
	} else {
		editor.HandleKey(tags.KeyEnter)
	}
	s.renderPage(w, r, entry, sess)
}

// handleLocations answers location picker lookups: ?q=<text>&limit=<n>.
func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	options := s.deps.Catalog.SearchOptions(query.Get("q"), limit)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(locationsResponse{Data: options})
}

type locationsResponse struct {
	Data []locations.Option `json:"data"`
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.deps.Health == nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	health, err := s.deps.Health.Health(r.Context())
	if err != nil {
		s.deps.Logger.Warn().Err(err).Msg("service health check failed")
		http.Error(w, "keyword service unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(health.Status))
}

// newController builds the controller shared by one browser's requests.
func (s *Server) newController() (*submission.Controller, error) {
	return submission.New(s.deps.Transport,
		submission.WithLogger(logging.Component(s.deps.Logger, "submission")),
		submission.WithObserver(func(state submission.Lifecycle) {
			s.metrics.Observe(state)
		}),
	)
}

// hydrate rebuilds a session from a posted form around the browser's
// controller: plain fields, committed tags (in posted order) and the pending
// tag input.
func (s *Server) hydrate(w http.ResponseWriter, r *http.Request) (*browserSession, *session.Session, error) {
	if err := r.ParseForm(); err != nil {
		return nil, nil, err
	}
	entry, err := s.sessions.Acquire(w, r)
	if err != nil {
		return nil, nil, err
	}
	sess := session.New(entry.controller, session.WithViewOptions(s.deps.ViewOpts...))
	for _, name := range plainFields {
		if values, ok := r.PostForm[name]; ok && len(values) > 0 {
			if err := sess.SetField(name, values[0]); err != nil {
				return nil, nil, err
			}
		}
	}
	editor := sess.Keywords()
	for _, kw := range r.PostForm[form.FieldSeedKeywords] {
		editor.SetPending(kw)
		editor.Commit()
	}
	editor.SetPending(r.PostForm.Get(inputPending))
	return entry, sess, nil
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, entry *browserSession, sess *session.Session) {
	entry.Remember(sess.Form())
	page := vanilla.NewPage(vanilla.PageInput{
		Form:      sess.Form(),
		Pending:   sess.Keywords().Pending(),
		CanSubmit: sess.CanSubmit(),
		View:      sess.View(),
		Catalog:   s.deps.Catalog,
	})
	out, err := s.deps.Renderer.RenderPage(r.Context(), page)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", s.deps.Renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.deps.Logger.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("render failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Str("request_id", middleware.GetReqID(r.Context())).
				Dur("latency", time.Since(start)).
				Msg("http")
		})
	}
}
