package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/print-notifier/config"
	"github.com/target/print-notifier/internal/adapters/gateway"
	"github.com/target/print-notifier/internal/adapters/templates"
	"github.com/target/print-notifier/internal/data"
	httpx "github.com/target/print-notifier/internal/http"
	"github.com/target/print-notifier/internal/observability/notify/slack"
	"github.com/target/print-notifier/internal/observability/statsd"
	"github.com/target/print-notifier/internal/service/failurenotifier"
	"github.com/target/print-notifier/internal/service/notification"
)

// ServiceDeps holds the infrastructure services are built on.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient // Optional
	Logger      *slog.Logger
}

// ServiceContainer holds the wired services.
type ServiceContainer struct {
	Dispatcher      *notification.Dispatcher
	FailureNotifier *failurenotifier.Service
	MetricsSink     *statsd.Client
	// Checks feed the readiness endpoint.
	Checks map[string]httpx.HealthChecker
}

// Close releases resources owned by the container.
func (c *ServiceContainer) Close() error {
	if c == nil {
		return nil
	}
	if c.Dispatcher != nil {
		c.Dispatcher.Wait()
	}
	return c.MetricsSink.Close()
}

// NewServices builds adapters and the dispatcher from configuration.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service deps with config are required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metricsSink := buildMetrics(logger, cfg.Observability.Metrics)
	failureNotifier := buildFailureNotifier(logger, cfg.Observability.Notifications)

	checks := map[string]httpx.HealthChecker{}
	var cache *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient, cfg.Redis.KeyPrefix)
		checks["redis"] = cache
	}

	provider, err := buildTemplateProvider(logger, cfg.Templates, cache)
	if err != nil {
		return nil, err
	}

	gw := gateway.NewClient(gateway.Config{
		Timeout: cfg.Notification.GatewayTimeout,
		Auth: gateway.AuthConfig{
			TokenURL:     cfg.GatewayAuth.TokenURL,
			ClientID:     cfg.GatewayAuth.ClientID,
			ClientSecret: cfg.GatewayAuth.ClientSecret,
			Scopes:       cfg.GatewayAuth.Scopes,
		},
		Logger: logger,
	})

	opts := notification.Options{
		Templates: provider,
		Gateway:   gw,
		Config: notification.Config{
			GatewayURL:                 cfg.Notification.EmailResourceURL,
			PrimaryLanguage:            cfg.Notification.PrimaryLanguage,
			PreferredLanguageAttribute: cfg.Notification.PreferredLanguageAttribute,
			Concurrency:                cfg.Notification.DeliveryConcurrency,
		},
		Logger: logger,
	}
	if failureNotifier.Enabled() {
		opts.Observer = failureNotifier
	}
	if metricsSink != nil {
		opts.Metrics = metricsSink
	}

	dispatcher, err := notification.NewDispatcher(opts)
	if err != nil {
		return nil, fmt.Errorf("create dispatcher: %w", err)
	}

	return &ServiceContainer{
		Dispatcher:      dispatcher,
		FailureNotifier: failureNotifier,
		MetricsSink:     metricsSink,
		Checks:          checks,
	}, nil
}

// buildTemplateProvider layers the Redis cache over the masterdata source
// when a cache is available and the TTL is positive.
func buildTemplateProvider(
	logger *slog.Logger,
	cfg config.TemplatesConfig,
	cache *data.RedisCacheRepo,
) (*templates.Provider, error) {
	var source templates.TextSource
	md, err := templates.NewMasterdataSource(templates.MasterdataConfig{
		BaseURL:   cfg.BaseURL,
		TextQuery: cfg.TextQuery,
		Timeout:   cfg.Timeout,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template source: %w", err)
	}
	source = md

	if cache != nil && cfg.CacheTTL > 0 {
		cached, err := templates.NewCachedSource(templates.CachedSourceOptions{
			Next:   md,
			Cache:  cache,
			TTL:    cfg.CacheTTL,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create template cache: %w", err)
		}
		source = cached
	}

	return templates.NewProvider(source)
}

// buildMetrics returns nil when metrics are disabled or the agent cannot be dialled.
func buildMetrics(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

func buildFailureNotifier(logger *slog.Logger, cfg config.ObservabilityNotificationsConfig) *failurenotifier.Service {
	if !cfg.Enabled {
		return failurenotifier.NewService(failurenotifier.Options{Logger: logger})
	}

	sinks := make([]failurenotifier.SinkRegistration, 0, 1)
	if cfg.Slack.Enabled {
		client, err := slack.NewClient(slack.Config{
			WebhookURL: cfg.Slack.WebhookURL,
			Channel:    cfg.Slack.Channel,
			Username:   cfg.Slack.Username,
			Timeout:    cfg.Timeout,
			RetryLimit: cfg.RetryLimit,
		})
		if err != nil {
			logger.Error("failed to initialise slack notifier", "error", err)
		} else {
			sinks = append(sinks, failurenotifier.SinkRegistration{Name: "slack", Sink: client})
		}
	}

	return failurenotifier.NewService(failurenotifier.Options{
		Logger:   logger,
		Sinks:    sinks,
		Severity: cfg.Severity,
		Timeout:  cfg.Timeout * 2,
	})
}
