package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/guildandgrove/website/internal/domain"
)

const (
	serviceName    = "guildandgrove-website"
	serviceVersion = "1.0.0"
)

// Exporter exports estimator metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	estimatesTotal metric.Int64Counter
	feesHist       metric.Float64Histogram
	hiresHist      metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	estimatesTotal, err := meter.Int64Counter(
		"gg_estimates_total",
		metric.WithDescription("Number of savings estimates computed"),
		metric.WithUnit("{estimate}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating estimates counter: %w", err)
	}

	feesHist, err := meter.Float64Histogram(
		"gg_estimate_annual_fees",
		metric.WithDescription("Estimated annual agency fee spend"),
		metric.WithUnit("{currency}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fees histogram: %w", err)
	}

	hiresHist, err := meter.Float64Histogram(
		"gg_estimate_hires",
		metric.WithDescription("Hires per year entered in the estimator"),
		metric.WithUnit("{hire}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hires histogram: %w", err)
	}

	return &Exporter{
		provider:       provider,
		estimatesTotal: estimatesTotal,
		feesHist:       feesHist,
		hiresHist:      hiresHist,
	}, nil
}

// RecordEstimate records one computed estimate.
func (e *Exporter) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	opt := metric.WithAttributes(attribute.String("source", source))

	e.estimatesTotal.Add(ctx, 1, opt)
	e.feesHist.Record(ctx, est.AnnualFees, opt)
	e.hiresHist.Record(ctx, est.Input.Hires, opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
