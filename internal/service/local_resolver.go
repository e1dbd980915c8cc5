package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fare-compare-api/internal/models"
)

const (
	earthRadiusKm = 6371.0

	// DefaultAverageSpeedKmh is the assumed urban speed used to derive a duration from a distance.
	DefaultAverageSpeedKmh = 22.0
)

const remoteNotConfiguredMsg = "GOOGLE_API_KEY missing. Provide lat,lng pairs, or set a key to use addresses."

var (
	coordinatePattern = regexp.MustCompile(`^\s*-?\d+\.\d+\s*,\s*-?\d+\.\d+\s*$`)
	// Inputs made only of coordinate characters are treated as a coordinate attempt rather than an address.
	coordinateLike = regexp.MustCompile(`^[\s\d.,+-]*,[\s\d.,+-]*$`)
)

type latLng struct {
	lat, lng float64
}

// LocalResolver estimates distance with the haversine formula and duration from an average speed.
type LocalResolver struct {
	speedKmh float64
}

// NewLocalResolver creates a local resolver. A non-positive speed falls back to DefaultAverageSpeedKmh.
func NewLocalResolver(speedKmh float64) *LocalResolver {
	if speedKmh <= 0 || math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) {
		speedKmh = DefaultAverageSpeedKmh
	}
	return &LocalResolver{speedKmh: speedKmh}
}

// Resolve requires both inputs to be strict "lat,lng" decimal pairs.
func (r *LocalResolver) Resolve(_ context.Context, origin, destination string) (models.DistanceResult, error) {
	from, err := parseLatLng("origin", origin)
	if err != nil {
		return models.DistanceResult{}, err
	}
	to, err := parseLatLng("destination", destination)
	if err != nil {
		return models.DistanceResult{}, err
	}

	km := haversineKm(from.lat, from.lng, to.lat, to.lng)
	return models.DistanceResult{
		DistanceKm:  km,
		DurationMin: km / r.speedKmh * 60,
	}, nil
}

func parseLatLng(field, s string) (latLng, error) {
	if !coordinatePattern.MatchString(s) {
		if coordinateLike.MatchString(s) {
			return latLng{}, unavailable(ReasonMalformedCoordinates,
				fmt.Sprintf("malformed %s coordinates %q: expected a decimal \"lat,lng\" pair such as 12.9352,77.6245", field, s), nil)
		}
		return latLng{}, unavailable(ReasonRemoteNotConfigured, remoteNotConfiguredMsg, nil)
	}

	parts := strings.SplitN(s, ",", 2)
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return latLng{}, unavailable(ReasonMalformedCoordinates, fmt.Sprintf("malformed %s latitude %q", field, parts[0]), err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return latLng{}, unavailable(ReasonMalformedCoordinates, fmt.Sprintf("malformed %s longitude %q", field, parts[1]), err)
	}

	if lat < -90 || lat > 90 {
		return latLng{}, unavailable(ReasonMalformedCoordinates, fmt.Sprintf("%s latitude %v out of range [-90, 90]", field, lat), nil)
	}
	if lng < -180 || lng > 180 {
		return latLng{}, unavailable(ReasonMalformedCoordinates, fmt.Sprintf("%s longitude %v out of range [-180, 180]", field, lng), nil)
	}

	return latLng{lat: lat, lng: lng}, nil
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
