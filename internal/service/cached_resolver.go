package service

import (
	"context"
	"strings"
	"time"

	"fare-compare-api/internal/models"

	"github.com/rs/zerolog/log"
)

// CachedResolver memoizes another resolver's results in a DistanceCache.
// Cache errors are logged and never fail the lookup.
type CachedResolver struct {
	next  DistanceResolver
	cache DistanceCache
	ttl   time.Duration
}

// NewCachedResolver wraps next. A non-positive ttl keeps entries forever.
func NewCachedResolver(next DistanceResolver, cache DistanceCache, ttl time.Duration) *CachedResolver {
	return &CachedResolver{next: next, cache: cache, ttl: ttl}
}

func (r *CachedResolver) Resolve(ctx context.Context, origin, destination string) (models.DistanceResult, error) {
	o, d := normalize(origin), normalize(destination)

	cached, err := r.cache.Get(ctx, o, d, r.ttl)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("distance cache lookup failed")
	case cached != nil:
		log.Debug().Str("origin", o).Str("destination", d).Msg("distance cache hit")
		return *cached, nil
	default:
		log.Debug().Str("origin", o).Str("destination", d).Msg("distance cache miss")
	}

	result, err := r.next.Resolve(ctx, origin, destination)
	if err != nil {
		return models.DistanceResult{}, err
	}

	if err := r.cache.Put(ctx, o, d, result); err != nil {
		log.Warn().Err(err).Msg("distance cache store failed")
	}
	return result, nil
}

// normalize collapses whitespace so equivalent inputs share a cache key.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
