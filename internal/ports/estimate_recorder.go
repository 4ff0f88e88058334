package ports

import (
	"context"

	"github.com/guildandgrove/website/internal/domain"
)

// Estimate sources, used as a metric attribute.
const (
	SourcePage = "page"
	SourceHTMX = "htmx"
	SourceAPI  = "api"
	SourceCLI  = "cli"
	SourceTUI  = "tui"
)

// EstimateRecorder records computed estimates to an observability backend.
type EstimateRecorder interface {
	// RecordEstimate records one computed estimate.
	RecordEstimate(ctx context.Context, source string, est domain.Estimate) error
	// Close flushes any pending data.
	Close(ctx context.Context) error
}

// Recorders fans an estimate out to every recorder in order.
// All recorders are called even when one fails; the first error is returned.
type Recorders []EstimateRecorder

func (rs Recorders) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	var first error
	for _, r := range rs {
		if err := r.RecordEstimate(ctx, source, est); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (rs Recorders) Close(ctx context.Context) error {
	var first error
	for _, r := range rs {
		if err := r.Close(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
