package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/guildandgrove/website/internal/content"
	"github.com/guildandgrove/website/internal/logging"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/seo"
	"github.com/guildandgrove/website/internal/shared/middleware"
	"github.com/guildandgrove/website/internal/util"
)

//go:embed static/*
var staticFiles embed.FS

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	return sub
}

// Options configures the HTTP server.
type Options struct {
	Addr            string
	BasePath        string // normalized, always ends in "/"
	Lang            string
	AssetVersion    string
	ShutdownTimeout time.Duration
	// Registry receives request and estimate metrics and backs /metrics.
	// Nil disables both.
	Registry *prometheus.Registry
}

type Server struct {
	opts     Options
	site     content.Site
	meta     seo.Metadata
	money    *util.Money
	recorder ports.EstimateRecorder
	logger   *zap.Logger
	router   chi.Router
	started  time.Time
}

func NewServer(
	opts Options,
	site content.Site,
	meta seo.Metadata,
	money *util.Money,
	recorder ports.EstimateRecorder,
	logger *zap.Logger,
) (*Server, error) {
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if recorder == nil {
		recorder = ports.Recorders{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		opts:     opts,
		site:     site,
		meta:     meta,
		money:    money,
		recorder: recorder,
		logger:   logger,
		router:   chi.NewRouter(),
		started:  time.Now(),
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() error {
	r := s.router
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.RequestLogger(s.logger, "http"))
	r.Use(chimw.Recoverer)
	r.Use(middleware.HTMX)

	if reg := s.opts.Registry; reg != nil {
		m := middleware.NewMetrics("web")
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register http metrics: %w", err)
		}
		r.Use(m.Handler)
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	base := s.opts.BasePath
	if base == "/" {
		s.registerRoutes(r)
		return nil
	}

	r.Route(strings.TrimSuffix(base, "/"), func(sub chi.Router) {
		sub.NotFound(http.NotFound)
		s.registerRoutes(sub)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			http.NotFound(w, req)
			return
		}
		http.Redirect(w, req, base, http.StatusFound)
	})
	return nil
}

func (s *Server) registerRoutes(r chi.Router) {
	// Static files
	static := http.StripPrefix(s.opts.BasePath+"static/", http.FileServer(http.FS(StaticFS())))
	r.Handle("/static/*", static)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/robots.txt", s.handleRobots)

	// Pages
	r.Get("/", s.handleIndex)
	r.Get("/estimate", s.handleEstimate)

	// API endpoints
	r.Get("/api/estimate", s.handleAPIEstimate)

	// Forms (HTMX, acknowledged only)
	r.Post("/contact", s.handleContact)
	r.Post("/newsletter", s.handleNewsletter)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log := s.logger.Sugar().Named("web")
	log.Infow("starting server", "addr", s.opts.Addr, "base_path", s.opts.BasePath)

	// Handle graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorw("server shutdown", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		log.Info("server stopped")
		return nil
	}
	return err
}
