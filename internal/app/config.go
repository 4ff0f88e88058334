package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/guildandgrove/website/internal/adapters/otel"
)

// EnvPrefix prefixes every environment variable read by New.
const EnvPrefix = "GG"

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	BasePath        string        `envconfig:"BASE_PATH" default:"/guildandgrove/"`
	SiteURL         string        `envconfig:"SITE_URL" default:"https://www.guildandgrove.com"`
	Locale          string        `envconfig:"LOCALE" default:"en-GB"`
	Currency        string        `envconfig:"CURRENCY" default:"GBP"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`

	OTEL otel.Config
}

// New loads configuration from GG_* environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the base path and checks locale and currency.
// Call again after overriding fields from flags.
func (c *Config) Validate() error {
	c.BasePath = NormalizeBasePath(c.BasePath)
	c.SiteURL = strings.TrimRight(strings.TrimSpace(c.SiteURL), "/")
	if c.SiteURL == "" {
		return fmt.Errorf("site url is required")
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}
	return nil
}

// Language parses the configured BCP 47 locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// CurrencyUnit parses the configured ISO 4217 currency code.
func (c *Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("invalid currency %q: %w", c.Currency, err)
	}
	return unit, nil
}

// CanonicalURL is the public URL of the landing page, always ending in "/".
func (c *Config) CanonicalURL() string {
	return c.SiteURL + c.BasePath
}

// NormalizeBasePath returns p with exactly one leading and one trailing slash.
// Examples: "" -> "/", "guildandgrove" -> "/guildandgrove/", "/a/b//" -> "/a/b/"
func NormalizeBasePath(p string) string {
	trimmed := strings.Trim(strings.TrimSpace(p), "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}
