package config

import (
	"strings"
	"time"
)

// DefaultDatetimePattern renders UTC timestamps with millisecond precision.
const DefaultDatetimePattern = "2006-01-02T15:04:05.000Z"

// NotificationConfig controls the dispatcher and its gateway client.
type NotificationConfig struct {
	// EmailResourceURL is the gateway endpoint accepting multipart email requests.
	EmailResourceURL string `env:"NOTIFICATION_EMAIL_RESOURCE_URL"`

	// DatetimePattern is a Go time layout used for response timestamps.
	DatetimePattern string `env:"NOTIFICATION_DATETIME_PATTERN" envDefault:"2006-01-02T15:04:05.000Z"`

	// PrimaryLanguage is the template language used when no preference resolves.
	PrimaryLanguage string `env:"NOTIFICATION_PRIMARY_LANGUAGE" envDefault:"eng"`

	// PreferredLanguageAttribute names the request attribute holding the
	// recipient's language display name. Empty disables preference lookup.
	PreferredLanguageAttribute string `env:"NOTIFICATION_PREFERRED_LANGUAGE_ATTRIBUTE"`

	// DeliveryConcurrency bounds parallel gateway calls per request.
	DeliveryConcurrency int `env:"NOTIFICATION_DELIVERY_CONCURRENCY" envDefault:"1"`

	// GatewayTimeout is the HTTP client timeout for gateway calls.
	GatewayTimeout time.Duration `env:"NOTIFICATION_GATEWAY_TIMEOUT" envDefault:"30s"`
}

// Sanitize normalises notification settings.
func (c *NotificationConfig) Sanitize() {
	c.EmailResourceURL = strings.TrimSpace(c.EmailResourceURL)
	c.PreferredLanguageAttribute = strings.TrimSpace(c.PreferredLanguageAttribute)
	if c.DatetimePattern = strings.TrimSpace(c.DatetimePattern); c.DatetimePattern == "" {
		c.DatetimePattern = DefaultDatetimePattern
	}
	if c.PrimaryLanguage = strings.TrimSpace(c.PrimaryLanguage); c.PrimaryLanguage == "" {
		c.PrimaryLanguage = "eng"
	}
	if c.DeliveryConcurrency < 1 {
		c.DeliveryConcurrency = 1
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = 30 * time.Second
	}
}

// GatewayAuthConfig enables OAuth2 client-credentials tokens on gateway calls.
type GatewayAuthConfig struct {
	TokenURL     string   `env:"TOKEN_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES"        envSeparator:","`
}

// Sanitize trims values and drops empty scopes.
func (c *GatewayAuthConfig) Sanitize() {
	c.TokenURL = strings.TrimSpace(c.TokenURL)
	c.ClientID = strings.TrimSpace(c.ClientID)
	scopes := c.Scopes[:0]
	for _, s := range c.Scopes {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	c.Scopes = scopes
}

// Enabled reports whether token acquisition is configured.
func (c *GatewayAuthConfig) Enabled() bool {
	return c.TokenURL != "" && c.ClientID != ""
}
