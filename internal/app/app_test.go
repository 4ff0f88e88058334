package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
)

func TestBuild_WithRecorders(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	a, err := Build(context.Background(), cfg, nil, true)
	require.NoError(t, err)

	require.NotNil(t, a.Registry)
	assert.Equal(t, "https://www.guildandgrove.com/guildandgrove/", a.Meta.Canonical)
	assert.Equal(t, "£", a.Money.Symbol())

	recorders, ok := a.Recorder.(ports.Recorders)
	require.True(t, ok)
	assert.Len(t, recorders, 1)

	in := domain.DefaultEstimateInput()
	assert.NoError(t, a.Recorder.RecordEstimate(context.Background(), ports.SourceCLI, in.Calculate()))
	assert.NoError(t, a.Close(context.Background()))
}

func TestBuild_WithoutRecorders(t *testing.T) {
	t.Setenv("GG_CURRENCY", "USD")
	t.Setenv("GG_LOCALE", "en-US")
	cfg, err := New()
	require.NoError(t, err)

	a, err := Build(context.Background(), cfg, nil, false)
	require.NoError(t, err)

	assert.Nil(t, a.Registry)
	assert.Equal(t, "$", a.Money.Symbol())
	assert.Equal(t, "$96,000", a.Money.Format(96000))
}

func TestApp_Server(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	a, err := Build(context.Background(), cfg, nil, true)
	require.NoError(t, err)

	srv, err := a.Server()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guildandgrove/api/estimate", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gg_estimates_total")
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Setenv("GG_ADDR", "127.0.0.1:0")
	cfg, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Run(ctx, cfg, nil))
}
