// Package config handles configuration for the GoPay-Lite client,
// including defaults, .env/environment overlay, JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the dashboard client.
//
// Fields:
//   - APIBaseURL: base origin all request paths are appended to.
//   - RequestTimeout: hard deadline for a single API call.
//   - DatabaseDSN: sqlite file holding the durable session store.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with local-development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.RequestTimeout = 8 * time.Second
	c.DatabaseDSN = "gopay.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present), a JSON file
// (if given), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
