package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over it (godotenv.Load never overwrites existing variables).
//
// Recognized variables:
//
//	INVESTRACK_DSN       local database path/DSN
//	INVESTRACK_CURRENCY  ISO 4217 rendering currency
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("INVESTRACK_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("INVESTRACK_CURRENCY"); v != "" {
		cfg.CurrencyCode = v
	}
}
