package otel

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
)

var (
	_ ports.EstimateRecorder = (*Exporter)(nil)
	_ ports.EstimateRecorder = (*NoOpExporter)(nil)
)

func TestNewExporter_DisabledReturnsError(t *testing.T) {
	if _, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"}); err == nil {
		t.Error("expected error for disabled exporter")
	}
	if _, err := NewExporter(context.Background(), Config{Enabled: true}); err == nil {
		t.Error("expected error for missing endpoint")
	}
}

func TestExporter_RecordEstimate(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	exp, err := newExporter(provider)
	if err != nil {
		t.Fatalf("newExporter: %v", err)
	}
	defer func() { _ = exp.Close(ctx) }()

	est := domain.DefaultEstimateInput().Calculate()
	if err := exp.RecordEstimate(ctx, ports.SourceHTMX, est); err != nil {
		t.Fatalf("RecordEstimate: %v", err)
	}
	if err := exp.RecordEstimate(ctx, ports.SourceHTMX, est); err != nil {
		t.Fatalf("RecordEstimate: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "gg_estimates_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected Sum[int64], got %T", m.Data)
			}
			if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
				t.Errorf("expected one data point with value 2, got %+v", sum.DataPoints)
			}
			found = true
		}
	}
	if !found {
		t.Error("gg_estimates_total not exported")
	}
}
