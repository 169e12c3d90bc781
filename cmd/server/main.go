package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/rosterdiff/internal/config"
	"github.com/JonMunkholm/rosterdiff/internal/core"
	_ "github.com/JonMunkholm/rosterdiff/internal/core/rules" // Register all rules
	"github.com/JonMunkholm/rosterdiff/internal/logging"
	"github.com/JonMunkholm/rosterdiff/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"diff_max_concurrent", cfg.Upload.MaxConcurrent,
		"diff_timeout", cfg.Upload.Timeout,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	service := core.NewService(core.ServiceConfig{
		MaxConcurrent: cfg.Upload.MaxConcurrent,
		MaxWait:       cfg.Upload.MaxWaitTime,
		Timeout:       cfg.Upload.Timeout,
	})

	slog.Info("rules registered", "count", core.RuleCount())
	for _, name := range core.RuleNames() {
		slog.Debug("rule", "name", name)
	}

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for running diffs to complete (with timeout)
		if status := service.Status(); status.Active > 0 {
			slog.Info("waiting for diffs to complete", "active", status.Active)
			if err := service.WaitForDiffs(shutdownCtx); err != nil {
				slog.Warn("diffs did not complete in time", "error", err)
			} else {
				slog.Info("all diffs completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
