package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"dayflow-backend/config"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/database"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/notify"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/routes"
	"dayflow-backend/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := setupLogger(cfg.Env)
	if !cfg.EnvFileLoaded {
		logger.Debug("No .env file found, using process environment")
	}
	if cfg.UsingFallbackSecret() {
		logger.Warn("JWT_SECRET is not set, falling back to the built-in development secret")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	db := repository.NewDB()
	if cfg.SeedDemo {
		if err = database.SeedAll(db, logger); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	var notifier notify.LeaveNotifier = notify.Nop{}
	if cfg.SMTP.Enabled() {
		settings := repository.NewSettingsRepository(db)
		company := func() string { return settings.Get().CompanyName }
		notifier = notify.NewMailer(cfg.SMTP, company, logger)
		logger.Info("Leave notifications enabled", "smtp_host", cfg.SMTP.Host)
	}

	app := server.New(routes.Deps{
		DB:       db,
		Tokens:   auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Metrics:  appMetrics,
		Notifier: notifier,
		Log:      logger,
	}, server.Options{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   os.Stdout,
		Gatherer:    reg,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Server listening", "port", cfg.Port, "env", cfg.Env)
		serverErr <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutdown signal received. Stopping server...")
		if err = app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("Server failed to shutdown", "error", err)
			os.Exit(1)
		}
		logger.Info("Server stopped gracefully.")
	case err = <-serverErr:
		if err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case config.EnvLocal:
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case config.EnvDev:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case config.EnvProd:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	default:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		logger.Error("The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	slog.SetDefault(logger)
	return logger
}
