package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/guildandgrove/", cfg.BasePath)
	assert.Equal(t, "https://www.guildandgrove.com", cfg.SiteURL)
	assert.Equal(t, "https://www.guildandgrove.com/guildandgrove/", cfg.CanonicalURL())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.OTEL.Enabled)

	tag, err := cfg.Language()
	require.NoError(t, err)
	assert.Equal(t, language.BritishEnglish, tag)

	unit, err := cfg.CurrencyUnit()
	require.NoError(t, err)
	assert.Equal(t, currency.GBP, unit)
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("GG_ADDR", ":9090")
	t.Setenv("GG_BASE_PATH", "site")
	t.Setenv("GG_SITE_URL", "https://example.org/")
	t.Setenv("GG_CURRENCY", "USD")
	t.Setenv("GG_OTEL_ENABLED", "true")
	t.Setenv("GG_OTEL_ENDPOINT", "collector:4317")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/site/", cfg.BasePath)
	assert.Equal(t, "https://example.org/site/", cfg.CanonicalURL())
	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.OTEL.Enabled)
	assert.Equal(t, "collector:4317", cfg.OTEL.Endpoint)
}

func TestNew_InvalidCurrency(t *testing.T) {
	t.Setenv("GG_CURRENCY", "POUNDS")

	_, err := New()
	assert.Error(t, err)
}

func TestNew_InvalidLocale(t *testing.T) {
	t.Setenv("GG_LOCALE", "not a locale!")

	_, err := New()
	assert.Error(t, err)
}

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"guildandgrove", "/guildandgrove/"},
		{"/guildandgrove", "/guildandgrove/"},
		{"/guildandgrove/", "/guildandgrove/"},
		{" /a/b// ", "/a/b/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBasePath(tt.in))
		})
	}
}
