package config

import "time"

// Config holds runtime settings for the wallet CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the wallet backend REST API.
//   - DatabasePath: sqlite file holding the on-device key-value store.
//   - RequestTimeout: per-request HTTP timeout.
//   - DefaultCountryCode: preselected country code on the phone screens.
//   - LogLevel: minimum slog level; kept at warn so logs stay out of the
//     interactive prompt.
type Config struct {
	ServerBaseURL      string
	DatabasePath       string
	RequestTimeout     time.Duration
	DefaultCountryCode string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8089"
	c.DatabasePath = "wallet.db"
	c.RequestTimeout = 15 * time.Second
	c.DefaultCountryCode = "+234"
	c.LogLevel = "warn"
}

// Load constructs a Config, applies defaults, then overlays values from a
// JSON file (if given via -c/-config) and command-line flags. Later sources
// take precedence.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
