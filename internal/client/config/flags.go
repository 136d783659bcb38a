package config

import (
	"flag"
	"os"

	"github.com/mrezendes/investrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-m string   ISO 4217 currency code for rendering (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.CurrencyCode, "m", cfg.CurrencyCode, "currency code used to render amounts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
