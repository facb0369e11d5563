// Package config handles configuration for the client component.
package config

// Config holds runtime settings for the wodtracker client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API (no trailing slash).
//   - DatabasePath: path of the local sqlite file holding persisted credentials.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.DatabasePath = "wodtracker.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
