// Package api provides the HTTP server for newsboard.
//
// GET / runs the whole lookup-and-render sequence once per page load; the
// JSON endpoints under /api/v1 expose the same dashboard to other clients.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/newsboard/internal/config"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/news"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/internal/render"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

// Options wires a Server.
type Options struct {
	Config    *config.Config
	Loader    *news.Loader
	Companies []models.Company
	Sources   []provider.SourceInfo // in lookup order
	Registry  *provider.Registry    // every known source, for listing and ?source=
	Logger    *slog.Logger
	Version   string
}

// Server is the HTTP server.
type Server struct {
	router    chi.Router
	cfg       *config.Config
	loader    *news.Loader
	companies []models.Company
	sources   []provider.SourceInfo
	registry  *provider.Registry
	log       *slog.Logger
	version   string
	started   time.Time
}

// NewServer creates a configured server with all routes and middleware.
func NewServer(opts Options) *Server {
	s := &Server{
		cfg:       opts.Config,
		loader:    opts.Loader,
		companies: opts.Companies,
		sources:   opts.Sources,
		registry:  opts.Registry,
		log:       opts.Logger,
		version:   opts.Version,
		started:   time.Now(),
	}
	if s.cfg == nil {
		s.cfg = &config.Config{}
	}
	if s.log == nil {
		s.log = infra.Discard()
	}
	if s.version == "" {
		s.version = "dev"
	}
	if s.loader == nil {
		s.loader = &news.Loader{Chain: &news.Chain{}, Pause: -1, Logger: s.log}
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: s.lookupTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.lookupTimeout() + 10*time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Dashboard page, rebuilt on every load
	r.Get("/", s.handlePage)

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/companies", s.handleCompanies)
		r.Get("/companies/{ticker}/news", s.handleCompanyNews)
		r.Get("/sources", s.handleSources)
		r.Get("/config", s.handleGetConfig)
		r.Get("/config/keys", s.handleGetConfigKeys)
	})

	return r
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthInfo is returned by GET /health.
type HealthInfo struct {
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	Companies int      `json:"companies"`
	Sources   []string `json:"sources"`
	Uptime    string   `json:"uptime"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		names = append(names, src.Name)
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: HealthInfo{
			Status:    "ok",
			Version:   s.version,
			Companies: len(s.companies),
			Sources:   names,
			Uptime:    time.Since(s.started).Round(time.Second).String(),
		},
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	d := s.load(r.Context(), s.companies)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := render.HTML(w, d, s.renderOptions(r)); err != nil {
		s.log.Error("render page", "error", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	keep, err := parseImpactFilter(r.URL.Query().Get("impact"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d := s.load(r.Context(), s.companies)
	if keep != nil {
		d.Entries = filterByImpact(d.Entries, keep)
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    render.NewDocument(d, s.renderOptions(r).Language),
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.companies,
	})
}

// handleCompanyNews looks up a single company. ?source=<name> queries only
// that registered source, without fallback.
func (s *Server) handleCompanyNews(w http.ResponseWriter, r *http.Request) {
	ticker := utils.NormalizeTicker(chi.URLParam(r, "ticker"))
	var (
		company models.Company
		found   bool
	)
	for _, c := range s.companies {
		if c.Ticker == ticker {
			company, found = c, true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "unknown company ticker: "+ticker)
		return
	}

	lang := s.renderOptions(r).Language
	name := r.URL.Query().Get("source")
	if name == "" {
		d := s.load(r.Context(), []models.Company{company})
		writeJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    render.NewDocument(d, lang).Entries[0],
		})
		return
	}

	if s.registry == nil {
		writeError(w, http.StatusBadRequest, "source selection is not available")
		return
	}
	src, err := s.registry.Get(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	single := &news.Loader{
		Chain: &news.Chain{
			Sources:    []provider.Source{src},
			Logger:     s.log,
			DateLayout: s.dateLayout(),
		},
		Pause:  -1,
		Logger: s.log,
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.lookupTimeout())
	defer cancel()
	d := single.Load(ctx, []models.Company{company})
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    render.NewDocument(d, lang).Entries[0],
	})
}

// SourceStatus describes a registered source and its place in the lookup order.
type SourceStatus struct {
	provider.SourceInfo
	Active   bool `json:"active"`
	Priority int  `json:"priority,omitempty"` // 1-based position when active
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.sourceStatus(),
	})
}

// ============================================================
// Helpers
// ============================================================

func (s *Server) load(ctx context.Context, companies []models.Company) models.Dashboard {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout())
	defer cancel()
	return s.loader.Load(ctx, companies)
}

// sourceStatus lists active sources in priority order, then every other
// registered source by name.
func (s *Server) sourceStatus() []SourceStatus {
	out := make([]SourceStatus, 0, len(s.sources))
	active := make(map[string]bool, len(s.sources))
	for i, info := range s.sources {
		active[info.Name] = true
		out = append(out, SourceStatus{SourceInfo: info, Active: true, Priority: i + 1})
	}
	if s.registry == nil {
		return out
	}
	for _, info := range s.registry.List() {
		if !active[info.Name] {
			out = append(out, SourceStatus{SourceInfo: info})
		}
	}
	return out
}

func (s *Server) dateLayout() string {
	if s.loader.Chain != nil {
		return s.loader.Chain.DateLayout
	}
	return ""
}

// parseImpactFilter reads a comma-separated ?impact= list. An empty value
// means no filtering and yields a nil set.
func parseImpactFilter(raw string) (map[models.Impact]bool, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	keep := make(map[models.Impact]bool)
	for _, part := range strings.Split(raw, ",") {
		i, err := models.ParseImpact(strings.ToLower(strings.TrimSpace(part)))
		if err != nil {
			return nil, err
		}
		keep[i] = true
	}
	return keep, nil
}

// filterByImpact keeps entries whose news carries one of the given impacts.
func filterByImpact(entries []models.Entry, keep map[models.Impact]bool) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.News != nil && keep[e.News.Impact] {
			out = append(out, e)
		}
	}
	return out
}

func (s *Server) lookupTimeout() time.Duration {
	if s.cfg.Lookup.TimeoutSec > 0 {
		return time.Duration(s.cfg.Lookup.TimeoutSec) * time.Second
	}
	return 60 * time.Second
}

// renderOptions applies the ?lang= override to the configured options.
func (s *Server) renderOptions(r *http.Request) render.Options {
	opts := render.Options{
		Language: s.cfg.Render.Language,
		Title:    s.cfg.Render.Title,
	}
	switch lang := strings.ToLower(r.URL.Query().Get("lang")); lang {
	case "en", "de":
		opts.Language = lang
	}
	return opts
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
