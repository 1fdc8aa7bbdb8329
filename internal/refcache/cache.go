// Package refcache caches upstream reference data (domains, offers,
// traffic sources, groups, flow actions, campaigns) with an explicit TTL
// and explicit invalidation on writes.
package refcache

import (
	"context"
	"log/slog"
	"time"
)

// Cache keys
const (
	KeyDomains     = "domains"
	KeyOffers      = "offers"
	KeySources     = "sources"
	KeyGroups      = "groups"
	KeyFlowActions = "flow_actions"
	KeyCampaigns   = "campaigns"
)

// DefaultTTL is how long reference data stays fresh.
const DefaultTTL = 10 * time.Minute

// Cache stores JSON-serializable values by key.
type Cache interface {
	// Get decodes the value under key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Invalidate drops keys. Missing keys are ignored.
	Invalidate(ctx context.Context, keys ...string) error
}

// Fetch returns the cached value under key or calls load and caches its
// result. A load reporting false is returned as-is and not cached, so a
// failed upstream read is retried on the next call. Cache failures are
// logged and never fail the fetch.
func Fetch[T any](ctx context.Context, c Cache, logger *slog.Logger, key string, ttl time.Duration, load func(context.Context) (T, bool)) (T, bool) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.WarnContext(ctx, "reference cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return cached, true
	}

	value, ok := load(ctx)
	if !ok {
		return value, false
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.WarnContext(ctx, "reference cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return value, true
}
