package cache

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// FetchFn loads the authoritative value when the cache has nothing usable.
type FetchFn[T any] func(ctx context.Context) (T, error)

// ReadThrough serves key from c, falling back to fetch on a miss and caching
// what fetch returned for ttl seconds. Cache errors degrade to a miss or a
// skipped save. Fetch errors are returned as is and never cached.
func ReadThrough[T any](ctx context.Context, c Cache, key string, ttl int, fetch FetchFn[T]) (T, error) {
	var cached T

	err := c.Get(ctx, key, &cached)
	if err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return cached, nil
	}

	if !errors.Is(err, Nil) {
		log.Warn().Err(err).Str("cacheKey", key).Msg("cache read failed, falling back to store")
	}

	res, err := fetch(ctx)
	if err != nil {
		return res, err
	}

	if err := c.Save(ctx, key, res, ttl); err != nil {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to populate cache")
	}

	return res, nil
}
