package templates

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/target/print-notifier/internal/core"
)

const cacheKeyPrefix = "template:text:"

// CachedSource keeps raw template text in a cache in front of another source.
// Cache failures are logged and never fail a lookup. Missing templates are not cached.
type CachedSource struct {
	next   TextSource
	cache  core.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// CachedSourceOptions groups dependencies for CachedSource.
type CachedSourceOptions struct {
	Next   TextSource           // Required
	Cache  core.CacheRepository // Required
	TTL    time.Duration
	Logger *slog.Logger
}

var _ TextSource = (*CachedSource)(nil)

// NewCachedSource constructs a caching decorator.
func NewCachedSource(opts CachedSourceOptions) (*CachedSource, error) {
	if opts.Next == nil {
		return nil, errors.New("cached template source requires a backing source")
	}
	if opts.Cache == nil {
		return nil, errors.New("cached template source requires a cache")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{
		next:   opts.Next,
		cache:  opts.Cache,
		ttl:    opts.TTL,
		logger: logger.With("component", "template_cache"),
	}, nil
}

// TemplateText implements TextSource.
func (c *CachedSource) TemplateText(ctx context.Context, templateID, languageCode string) (string, bool, error) {
	key := cacheKey(templateID, languageCode)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "template cache read failed", "key", key, "error", err)
	case cached != nil:
		return string(cached), true, nil
	}

	text, found, err := c.next.TemplateText(ctx, templateID, languageCode)
	if err != nil || !found {
		return text, found, err
	}

	if err := c.cache.Set(ctx, key, []byte(text), c.ttl); err != nil {
		c.logger.WarnContext(ctx, "template cache write failed", "key", key, "error", err)
	}
	return text, true, nil
}

func cacheKey(templateID, languageCode string) string {
	return cacheKeyPrefix + languageCode + ":" + templateID
}
