package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/print-notifier/config"
	"github.com/target/print-notifier/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger = bootstrap.ConfigureLogger(logger, &cfg)

	logStartupInfo(ctx, logger, &cfg)

	redisClient, err := bootstrap.ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	deps := &bootstrap.ServiceDeps{Config: &cfg, Logger: logger}
	if redisClient != nil {
		deps.RedisClient = redisClient
	}
	services, err := bootstrap.NewServices(deps)
	if err != nil {
		return err
	}

	return bootstrap.RunWithShutdown(ctx, &bootstrap.RunConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting print-notifier",
		"addr", cfg.HTTP.Addr,
		"primary_language", cfg.Notification.PrimaryLanguage,
		"delivery_concurrency", cfg.Notification.DeliveryConcurrency,
		"template_cache", cfg.Redis.Enabled() && cfg.Templates.CacheTTL > 0,
		"gateway_auth", cfg.GatewayAuth.Enabled(),
		"metrics", cfg.Observability.Metrics.IsEnabled(),
		"failure_alerts", cfg.Observability.Notifications.Slack.Enabled)
}
