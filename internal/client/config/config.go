// Package config loads runtime settings for the investrack CLI.
package config

// Config holds runtime settings for the investrack CLI.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local database file.
//   - CurrencyCode: ISO 4217 code used when rendering amounts.
type Config struct {
	DatabaseDSN  string
	CurrencyCode string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "investrack.db"
	c.CurrencyCode = "BRL"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
