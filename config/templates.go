package config

import (
	"strings"
	"time"
)

// TemplatesConfig points at the template service.
type TemplatesConfig struct {
	// BaseURL is the templates endpoint; lookups go to {BaseURL}/{lang}/{templateID}.
	BaseURL string `env:"BASE_URL"`

	// TextQuery is a JMESPath expression selecting the template text from the response.
	TextQuery string `env:"TEXT_QUERY" envDefault:"response.templates[0].fileText"`

	// Timeout is the HTTP client timeout for template lookups.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// CacheTTL controls how long template text stays in Redis. Zero disables caching.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// Sanitize normalises template settings.
func (c *TemplatesConfig) Sanitize() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.TextQuery = strings.TrimSpace(c.TextQuery)
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
}

// RedisConfig contains Redis connection settings for the template cache.
type RedisConfig struct {
	Addr      string `env:"ADDR"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB"         envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"print-notifier:"`
}

// Sanitize trims connection values.
func (c *RedisConfig) Sanitize() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.DB < 0 {
		c.DB = 0
	}
}

// Enabled reports whether a Redis address is configured.
func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}
