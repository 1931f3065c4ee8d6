package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/pkamenev/go-task-manager/internal/cache"
)

// fetchAllCached reads an "all entities" snapshot through the cache.
// A hit is deserialized and returned without a freshness check, so
// staleness is bounded only by the TTL. A miss falls through to fetch
// and repopulates the key. Cache failures are logged and treated as
// misses; the store stays the source of truth.
func fetchAllCached[T any](
	ctx context.Context,
	logger zerolog.Logger,
	c cache.Cache,
	key string,
	ttl time.Duration,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("cache_key", key).
			Msg("cache read failed, falling back to store")
	}
	if ok {
		var items []T
		if err = json.Unmarshal(data, &items); err == nil {
			logger.Debug().
				Str("cache_key", key).
				Int("count", len(items)).
				Msg("cache hit")
			return items, nil
		}
		logger.Warn().
			Err(err).
			Str("cache_key", key).
			Msg("failed to decode cached snapshot")
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(items)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("cache_key", key).
			Msg("failed to encode snapshot")
		return items, nil
	}
	if err = c.Set(ctx, key, data, ttl); err != nil {
		logger.Warn().
			Err(err).
			Str("cache_key", key).
			Msg("failed to cache snapshot")
	}
	return items, nil
}

// dropSnapshot removes a snapshot key after a successful write so the
// next read repopulates from the store.
func dropSnapshot(ctx context.Context, logger zerolog.Logger, c cache.Cache, key string) {
	if err := c.Delete(ctx, key); err != nil {
		logger.Warn().
			Err(err).
			Str("cache_key", key).
			Msg("failed to invalidate snapshot")
	}
}
