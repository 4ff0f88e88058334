package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guildandgrove/website/internal/adapters/otel"
	promadapter "github.com/guildandgrove/website/internal/adapters/prometheus"
	"github.com/guildandgrove/website/internal/content"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/seo"
	"github.com/guildandgrove/website/internal/util"
	"github.com/guildandgrove/website/internal/web"
)

// App holds the dependencies shared by the serve and render commands.
type App struct {
	Config   *Config
	Site     content.Site
	Meta     seo.Metadata
	Money    *util.Money
	Registry *prometheus.Registry
	Recorder ports.EstimateRecorder
	Logger   *zap.Logger
}

// Build wires the site from cfg. Metadata is computed once here.
// withRecorders controls whether estimate metrics are collected.
func Build(ctx context.Context, cfg *Config, logger *zap.Logger, withRecorders bool) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return nil, err
	}

	site := content.Default()
	meta, err := seo.Build(cfg.CanonicalURL(), site.Brand)
	if err != nil {
		return nil, fmt.Errorf("build metadata: %w", err)
	}

	a := &App{
		Config:   cfg,
		Site:     site,
		Meta:     meta,
		Money:    util.NewMoney(tag, unit),
		Recorder: ports.Recorders{},
		Logger:   logger,
	}
	if !withRecorders {
		return a, nil
	}

	recorders, err := a.buildRecorders(ctx)
	if err != nil {
		return nil, err
	}
	a.Recorder = recorders
	return a, nil
}

func (a *App) buildRecorders(ctx context.Context) (ports.Recorders, error) {
	log := a.Logger.Sugar().Named("app")
	var recorders ports.Recorders

	if a.Config.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rec, err := promadapter.NewRecorder(reg)
		if err != nil {
			return nil, err
		}
		a.Registry = reg
		recorders = append(recorders, rec)
	}

	if a.Config.OTEL.Enabled {
		exp, err := otel.NewExporter(ctx, a.Config.OTEL)
		if err != nil {
			// Export is optional; the site keeps serving without it.
			log.Warnw("otel exporter unavailable", "endpoint", a.Config.OTEL.Endpoint, "error", err)
			recorders = append(recorders, otel.NewNoOpExporter())
		} else {
			log.Infow("otel exporter enabled", "endpoint", a.Config.OTEL.Endpoint)
			recorders = append(recorders, exp)
		}
	}

	return recorders, nil
}

// Server builds the HTTP server for the configured base path.
func (a *App) Server() (*web.Server, error) {
	return web.NewServer(web.Options{
		Addr:            a.Config.Addr,
		BasePath:        a.Config.BasePath,
		Lang:            a.Config.Locale,
		AssetVersion:    uuid.NewString()[:8],
		ShutdownTimeout: a.Config.ShutdownTimeout,
		Registry:        a.Registry,
	}, a.Site, a.Meta, a.Money, a.Recorder, a.Logger)
}

// Close flushes the estimate recorders.
func (a *App) Close(ctx context.Context) error {
	return a.Recorder.Close(ctx)
}

// Run serves the site until ctx is cancelled, then flushes recorders.
func Run(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	a, err := Build(ctx, cfg, logger, true)
	if err != nil {
		return err
	}
	srv, err := a.Server()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			a.Logger.Sugar().Named("app").Warnw("flush recorders", "error", err)
		}
		return nil
	})
	return g.Wait()
}
