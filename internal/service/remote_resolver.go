package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fare-compare-api/internal/models"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

const (
	defaultRemoteTimeout = 10 * time.Second
	remoteFailedMsg      = "Google Distance Matrix request failed"
	elementStatusOK      = "OK"
)

// RemoteResolver delegates to the Google Distance Matrix API.
// Origin and destination are passed through verbatim, so both addresses and "lat,lng" strings work.
type RemoteResolver struct {
	client  *maps.Client
	timeout time.Duration
}

// NewRemoteResolver creates a resolver for the given API key. baseURL overrides the Google endpoint when non-empty.
func NewRemoteResolver(apiKey, baseURL string, timeout time.Duration) (*RemoteResolver, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &RemoteResolver{client: client, timeout: timeout}, nil
}

// Resolve performs a single Distance Matrix lookup. There are no retries.
func (r *RemoteResolver) Resolve(ctx context.Context, origin, destination string) (models.DistanceResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
	}

	resp, err := r.client.DistanceMatrix(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("distance matrix request failed")
		return models.DistanceResult{}, unavailable(ReasonRemoteFailure, remoteFailedMsg, err)
	}

	element, err := firstElement(resp)
	if err != nil {
		log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("distance matrix returned no usable element")
		return models.DistanceResult{}, unavailable(ReasonRemoteFailure, remoteFailedMsg, err)
	}

	return models.DistanceResult{
		DistanceKm:  float64(element.Distance.Meters) / 1000,
		DurationMin: element.Duration.Seconds() / 60,
	}, nil
}

func firstElement(resp *maps.DistanceMatrixResponse) (*maps.DistanceMatrixElement, error) {
	if resp == nil || len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 || resp.Rows[0].Elements[0] == nil {
		return nil, errors.New("empty distance matrix")
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != elementStatusOK {
		return nil, fmt.Errorf("element status %s", element.Status)
	}
	if element.Distance.Meters < 0 || element.Duration < 0 {
		return nil, fmt.Errorf("negative metrics: %dm %v", element.Distance.Meters, element.Duration)
	}
	return element, nil
}
