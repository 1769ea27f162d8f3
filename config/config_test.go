package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.HTTP.Addr)
	}
	if cfg.Notification.DatetimePattern != DefaultDatetimePattern {
		t.Errorf("expected default datetime pattern, got %q", cfg.Notification.DatetimePattern)
	}
	if cfg.Notification.PrimaryLanguage != "eng" {
		t.Errorf("expected eng primary language, got %q", cfg.Notification.PrimaryLanguage)
	}
	if cfg.Notification.DeliveryConcurrency != 1 {
		t.Errorf("expected sequential delivery by default, got %d", cfg.Notification.DeliveryConcurrency)
	}
	if cfg.Notification.GatewayTimeout != 30*time.Second {
		t.Errorf("expected 30s gateway timeout, got %v", cfg.Notification.GatewayTimeout)
	}
	if cfg.Templates.TextQuery != "response.templates[0].fileText" {
		t.Errorf("unexpected text query %q", cfg.Templates.TextQuery)
	}
	if cfg.Templates.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m cache ttl, got %v", cfg.Templates.CacheTTL)
	}
	if cfg.Redis.Enabled() {
		t.Error("expected redis to be disabled without an address")
	}
	if cfg.GatewayAuth.Enabled() {
		t.Error("expected gateway auth to be disabled by default")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without gateway and templates urls")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("NOTIFICATION_EMAIL_RESOURCE_URL", " https://gateway.example/v1/notifier/email/send ")
	t.Setenv("NOTIFICATION_PRIMARY_LANGUAGE", "fra")
	t.Setenv("NOTIFICATION_PREFERRED_LANGUAGE_ATTRIBUTE", "preferredLang")
	t.Setenv("NOTIFICATION_DELIVERY_CONCURRENCY", "4")
	t.Setenv("GATEWAY_AUTH_TOKEN_URL", "https://auth.example/token")
	t.Setenv("GATEWAY_AUTH_CLIENT_ID", "print-notifier")
	t.Setenv("GATEWAY_AUTH_CLIENT_SECRET", "secret")
	t.Setenv("GATEWAY_AUTH_SCOPES", "notify, ,email")
	t.Setenv("TEMPLATES_BASE_URL", "https://masterdata.example/v1/masterdata/templates")
	t.Setenv("TEMPLATES_CACHE_TTL", "1m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("unexpected addr %q", cfg.HTTP.Addr)
	}
	if cfg.Notification.EmailResourceURL != "https://gateway.example/v1/notifier/email/send" {
		t.Errorf("expected trimmed gateway url, got %q", cfg.Notification.EmailResourceURL)
	}
	if cfg.Notification.PrimaryLanguage != "fra" || cfg.Notification.PreferredLanguageAttribute != "preferredLang" {
		t.Errorf("unexpected language settings %+v", cfg.Notification)
	}
	if cfg.Notification.DeliveryConcurrency != 4 {
		t.Errorf("unexpected concurrency %d", cfg.Notification.DeliveryConcurrency)
	}
	if !cfg.GatewayAuth.Enabled() {
		t.Error("expected gateway auth to be enabled")
	}
	if !reflect.DeepEqual(cfg.GatewayAuth.Scopes, []string{"notify", "email"}) {
		t.Errorf("unexpected scopes %v", cfg.GatewayAuth.Scopes)
	}
	if cfg.Templates.CacheTTL != time.Minute {
		t.Errorf("unexpected cache ttl %v", cfg.Templates.CacheTTL)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.DB != 2 || cfg.Redis.KeyPrefix != "print-notifier:" {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestNotificationConfig_Sanitize(t *testing.T) {
	cfg := NotificationConfig{
		DatetimePattern:     " ",
		PrimaryLanguage:     "",
		DeliveryConcurrency: -3,
		GatewayTimeout:      0,
	}
	cfg.Sanitize()

	if cfg.DatetimePattern != DefaultDatetimePattern {
		t.Errorf("expected default pattern, got %q", cfg.DatetimePattern)
	}
	if cfg.PrimaryLanguage != "eng" {
		t.Errorf("expected eng, got %q", cfg.PrimaryLanguage)
	}
	if cfg.DeliveryConcurrency != 1 {
		t.Errorf("expected concurrency clamp to 1, got %d", cfg.DeliveryConcurrency)
	}
	if cfg.GatewayTimeout <= 0 {
		t.Errorf("expected gateway timeout default, got %v", cfg.GatewayTimeout)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Fatal("expected NODE_ENV=development to enable dev mode")
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}

func TestObservabilityNotificationsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityNotificationsConfig{
		Enabled:    true,
		Timeout:    0,
		RetryLimit: -1,
		Severity:   " CRITICAL ",
		Slack: SlackNotificationConfig{
			Enabled:    true,
			WebhookURL: " ",
			Channel:    "  ",
			Username:   "",
		},
	}

	cfg.Sanitize()

	if cfg.Timeout <= 0 {
		t.Fatalf("expected timeout to fall back to default, got %v", cfg.Timeout)
	}
	if cfg.RetryLimit < 0 {
		t.Fatalf("expected retry limit to be clamped to >= 0, got %d", cfg.RetryLimit)
	}
	if cfg.Severity != "critical" {
		t.Fatalf("expected normalised severity, got %q", cfg.Severity)
	}
	if cfg.Slack.Enabled {
		t.Fatal("expected slack to be disabled without a webhook url")
	}
	if cfg.Slack.Username != "print-notifier" {
		t.Fatalf("expected slack username default, got %q", cfg.Slack.Username)
	}

	// Disabled top-level should disable child sinks.
	cfg = ObservabilityNotificationsConfig{
		Enabled: false,
		Slack: SlackNotificationConfig{
			Enabled:    true,
			WebhookURL: "https://hooks.slack.com/services/test",
		},
	}
	cfg.Sanitize()
	if cfg.Slack.Enabled {
		t.Fatal("expected slack to be disabled when notifications are disabled")
	}
}
