package otel

// Config holds OTEL exporter configuration.
// Loaded as part of the application config (GG_OTEL_*).
type Config struct {
	Endpoint string `envconfig:"ENDPOINT"`
	Enabled  bool   `envconfig:"ENABLED"`
	Insecure bool   `envconfig:"INSECURE"`
}
