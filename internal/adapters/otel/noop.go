package otel

import (
	"context"

	"github.com/guildandgrove/website/internal/domain"
)

// NoOpExporter is an estimate recorder that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
