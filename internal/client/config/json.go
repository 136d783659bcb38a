package config

import (
	"encoding/json"
	"os"

	"github.com/mrezendes/investrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN  string `json:"database_dsn"`
	CurrencyCode string `json:"currency_code"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when neither is given, nothing is loaded.
// Only fields present in the file override cfg.
//
// Panics on read or unmarshal errors: a config file that was explicitly
// pointed at but cannot be used is a startup failure, not something to limp
// past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.CurrencyCode != "" {
		cfg.CurrencyCode = jc.CurrencyCode
	}
}
