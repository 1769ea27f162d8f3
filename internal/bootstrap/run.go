package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/target/print-notifier/config"
)

// RunConfig groups what RunWithShutdown needs.
type RunConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown serves HTTP until SIGINT or SIGTERM, or until the server
// fails, then shuts down gracefully.
func RunWithShutdown(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil || cfg.Services == nil {
		return errors.New("run config with services is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	}, errCh)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
		logger.Info("shutting down services...")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down services...")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}

	stopErr := ShutdownHTTPServer(ShutdownConfig{
		Context: context.WithoutCancel(ctx),
		Server:  server,
		Timeout: cfg.Config.HTTP.ShutdownTimeout,
		Logger:  logger,
	})
	if closeErr := cfg.Services.Close(); closeErr != nil {
		logger.Warn("close services", "error", closeErr)
	}
	return errors.Join(runErr, stopErr)
}
