package service

import (
	"context"
	"math"
	"strings"

	"fare-compare-api/internal/models"
)

// FareService compares fares across providers for one trip.
type FareService struct {
	resolver   DistanceResolver
	calculator *FareCalculator
}

// NewFareService creates a new fare comparison service
func NewFareService(resolver DistanceResolver, calculator *FareCalculator) *FareService {
	return &FareService{resolver: resolver, calculator: calculator}
}

// Compare resolves the trip distance, prices it for every provider and builds the deep links.
// Resolver failures are returned untouched so their message reaches the caller.
func (s *FareService) Compare(ctx context.Context, origin, destination string) (*models.ComparisonResult, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, ErrValidation
	}

	dist, err := s.resolver.Resolve(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if !validMetric(dist.DistanceKm) || !validMetric(dist.DurationMin) {
		return nil, unavailable(ReasonRemoteFailure, "distance lookup returned invalid metrics", nil)
	}

	return &models.ComparisonResult{
		Meta: models.Meta{
			DistanceKm:  math.Round(dist.DistanceKm*100) / 100,
			DurationMin: int64(math.Round(dist.DurationMin)),
		},
		Fares: s.calculator.ComputeFares(dist.DistanceKm, dist.DurationMin),
		Links: BuildLinks(origin, destination),
	}, nil
}

func validMetric(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
