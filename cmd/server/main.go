package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reshetovitsme/rss-digest/internal/di"
	digestService "github.com/reshetovitsme/rss-digest/internal/modules/digest/service"
	"github.com/reshetovitsme/rss-digest/internal/shared/config"
	"github.com/reshetovitsme/rss-digest/internal/shared/logger"
	httpServer "github.com/reshetovitsme/rss-digest/internal/transport/http"
	"github.com/samber/do/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Text on stdout, errors as JSON on stderr, optional rotated file
	log, closer, err := logger.Default(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		slog.Error("Failed to setup logging", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(log)

	injector := di.Setup(cfg)

	digest, err := do.Invoke[*digestService.Service](injector)
	if err != nil {
		slog.Error("Failed to setup digest service", "error", err)
		os.Exit(1)
	}
	server := do.MustInvoke[*httpServer.Server](injector)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	digest.Start(ctx)

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	slog.Info("Application started",
		"port", cfg.HTTPPort,
		"feed_url", cfg.FeedURL,
		"refresh_interval", cfg.RefreshEvery(),
		"app_env", cfg.AppEnv,
		"telegram", cfg.TelegramEnabled(),
	)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := di.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}
