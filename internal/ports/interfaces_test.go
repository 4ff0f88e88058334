package ports_test

import (
	"testing"

	"github.com/guildandgrove/website/internal/adapters/otel"
	"github.com/guildandgrove/website/internal/adapters/prometheus"
	"github.com/guildandgrove/website/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestPrometheusRecorderConformance(t *testing.T) {
	var _ ports.EstimateRecorder = (*prometheus.Recorder)(nil)
}

func TestOTELExporterConformance(t *testing.T) {
	var _ ports.EstimateRecorder = (*otel.Exporter)(nil)
}

func TestNoOpExporterConformance(t *testing.T) {
	var _ ports.EstimateRecorder = (*otel.NoOpExporter)(nil)
}

func TestRecordersConformance(t *testing.T) {
	var _ ports.EstimateRecorder = ports.Recorders{}
}
