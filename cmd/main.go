package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"basket/internal/application"
	"basket/internal/config"
	"basket/pkg/contextx"
	"basket/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogLevel, cfg.App.LogNoColor).
		With(
			slog.String("app", cfg.App.Name),
			slog.String("version", cfg.App.Version),
		)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}
