// Package config loads print-notifier settings from the environment.
package config

import (
	"errors"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - notification.go: Dispatcher and gateway configuration
//   - templates.go: Template service and cache configuration
//   - observability.go: Metrics and failure alerts
type AppConfig struct {
	// IsDev switches the logger to text output at debug level.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	HTTP         HTTPConfig
	Notification NotificationConfig
	GatewayAuth  GatewayAuthConfig `envPrefix:"GATEWAY_AUTH_"`
	Templates    TemplatesConfig   `envPrefix:"TEMPLATES_"`
	Redis        RedisConfig       `envPrefix:"REDIS_"`

	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Notification.Sanitize()
	c.GatewayAuth.Sanitize()
	c.Templates.Sanitize()
	c.Redis.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// Validate reports settings the service cannot start without.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Notification.EmailResourceURL == "" {
		errs = append(errs, errors.New("NOTIFICATION_EMAIL_RESOURCE_URL is required"))
	}
	if c.Templates.BaseURL == "" {
		errs = append(errs, errors.New("TEMPLATES_BASE_URL is required"))
	}
	return errors.Join(errs...)
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
