package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fare-compare-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS distance_cache (
		origin       TEXT NOT NULL,
		destination  TEXT NOT NULL,
		distance_km  DOUBLE PRECISION NOT NULL,
		duration_min DOUBLE PRECISION NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (origin, destination)
	);
	CREATE INDEX IF NOT EXISTS distance_cache_updated_at_idx ON distance_cache (updated_at);
`

// DistanceCache stores remote distance lookups in PostgreSQL
type DistanceCache struct {
	db *pgxpool.Pool
}

// NewDistanceCache creates a new PostgreSQL distance cache
func NewDistanceCache(db *pgxpool.Pool) *DistanceCache {
	return &DistanceCache{db: db}
}

// EnsureSchema creates the cache table when it does not exist yet
func (r *DistanceCache) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create distance_cache table: %w", err)
	}
	return nil
}

// Get returns the cached distance for the pair, or nil when absent or older than maxAge.
// A non-positive maxAge disables the age check.
func (r *DistanceCache) Get(ctx context.Context, origin, destination string, maxAge time.Duration) (*models.DistanceResult, error) {
	sql := `
		SELECT distance_km, duration_min
		FROM distance_cache
		WHERE origin = $1 AND destination = $2 AND updated_at >= $3
	`

	var cutoff time.Time
	if maxAge > 0 {
		cutoff = time.Now().Add(-maxAge)
	}

	var result models.DistanceResult
	err := r.db.QueryRow(ctx, sql, origin, destination, cutoff).Scan(&result.DistanceKm, &result.DurationMin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to read distance cache: %w", err)
	}

	return &result, nil
}

// Put stores or refreshes the cached distance for the pair
func (r *DistanceCache) Put(ctx context.Context, origin, destination string, result models.DistanceResult) error {
	sql := `
		INSERT INTO distance_cache (origin, destination, distance_km, duration_min, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (origin, destination) DO UPDATE
		SET distance_km = EXCLUDED.distance_km,
			duration_min = EXCLUDED.duration_min,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, sql, origin, destination, result.DistanceKm, result.DurationMin); err != nil {
		return fmt.Errorf("repository: failed to write distance cache: %w", err)
	}
	return nil
}

// Count returns the number of cached pairs
func (r *DistanceCache) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM distance_cache").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count distance cache: %w", err)
	}
	return count, nil
}

// PurgeOlderThan deletes entries not refreshed within age and reports how many were removed
func (r *DistanceCache) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM distance_cache WHERE updated_at < $1", time.Now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("repository: failed to purge distance cache: %w", err)
	}
	return tag.RowsAffected(), nil
}
