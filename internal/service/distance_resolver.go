package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fare-compare-api/internal/models"

	"github.com/rs/zerolog/log"
)

// DistanceResolver turns an origin/destination pair into a travel distance and duration.
// Implementations return a *DistanceUnavailableError when no distance can be produced.
type DistanceResolver interface {
	Resolve(ctx context.Context, origin, destination string) (models.DistanceResult, error)
}

// DistanceCache stores remote lookups. Get returns nil, nil on a miss.
type DistanceCache interface {
	Get(ctx context.Context, origin, destination string, maxAge time.Duration) (*models.DistanceResult, error)
	Put(ctx context.Context, origin, destination string, result models.DistanceResult) error
}

// ResolverOptions selects and configures the resolver strategy.
type ResolverOptions struct {
	// APIKey enables the remote strategy when non-empty.
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	AverageSpeedKmh float64
	// Cache is only consulted by the remote strategy. Nil disables caching.
	Cache    DistanceCache
	CacheTTL time.Duration
}

// NewDistanceResolver picks the remote strategy when a credential is configured and the local one otherwise.
func NewDistanceResolver(opts ResolverOptions) (DistanceResolver, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		log.Info().Float64("speed_kmh", opts.AverageSpeedKmh).Msg("distance resolver: local haversine strategy")
		return NewLocalResolver(opts.AverageSpeedKmh), nil
	}

	remote, err := NewRemoteResolver(opts.APIKey, opts.BaseURL, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create remote resolver: %w", err)
	}
	if opts.Cache == nil {
		log.Info().Msg("distance resolver: remote distance matrix strategy")
		return remote, nil
	}

	log.Info().Dur("cache_ttl", opts.CacheTTL).Msg("distance resolver: remote distance matrix strategy with cache")
	return NewCachedResolver(remote, opts.Cache, opts.CacheTTL), nil
}
