package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/app"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/config"
	"github.com/pump-ai-fun/kind-of-stop-spam/pkg/telemetry"

	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.EnableTelemetry {
		shutdown, err := telemetry.InitTracer("kind-of-stop-spam", os.Stderr)
		if err != nil {
			logger.Error("Failed to init telemetry", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("Failed to shutdown telemetry", "error", err)
				}
			}()
		}
	}

	application, err := app.NewApp(cfg, logger, &app.LogSink{Logger: logger})
	if err != nil {
		logger.Error("Failed to initialize app", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("Application error", "error", err)
		os.Exit(1)
	}
}
