package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mrezendes/investrack/internal/client/cli"
	"github.com/mrezendes/investrack/internal/client/config"
	"github.com/mrezendes/investrack/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
