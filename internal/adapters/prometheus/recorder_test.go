package prometheus

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
)

var _ ports.EstimateRecorder = (*Recorder)(nil)

func TestRecorder_RecordEstimate(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	est := domain.DefaultEstimateInput().Calculate()
	require.NoError(t, rec.RecordEstimate(context.Background(), ports.SourceAPI, est))
	require.NoError(t, rec.RecordEstimate(context.Background(), ports.SourceAPI, est))
	require.NoError(t, rec.RecordEstimate(context.Background(), ports.SourcePage, est))

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.estimates.WithLabelValues(ports.SourceAPI)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.estimates.WithLabelValues(ports.SourcePage)))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.fees))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
