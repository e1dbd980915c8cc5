package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 12.9352, lng1: 77.6245,
			lat2: 12.9352, lng2: 77.6245,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name: "Koramangala to MG Road",
			lat1: 12.9352, lng1: 77.6245,
			lat2: 12.9716, lng2: 77.5946,
			wantKm:    5.1847,
			tolerance: 0.001,
		},
		{
			name: "New York to Los Angeles (~3944km)",
			lat1: 40.7128, lng1: -74.0060,
			lat2: 34.0522, lng2: -118.2437,
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	d1 := haversineKm(12.9, 77.5, 13.1, 77.7)
	d2 := haversineKm(13.1, 77.7, 12.9, 77.5)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestLocalResolver_Resolve(t *testing.T) {
	r := NewLocalResolver(DefaultAverageSpeedKmh)

	got, err := r.Resolve(context.Background(), "12.9352,77.6245", "12.9716,77.5946")
	require.NoError(t, err)

	// Direct computation of the haversine formula for the same pair.
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat, dLng := toRad(12.9716-12.9352), toRad(77.5946-77.6245)
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(toRad(12.9352))*math.Cos(toRad(12.9716))*math.Pow(math.Sin(dLng/2), 2)
	want := 6371 * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	assert.InDelta(t, want, got.DistanceKm, 1e-9)
	assert.InDelta(t, got.DistanceKm/22*60, got.DurationMin, 1e-9)
}

func TestLocalResolver_AcceptsWhitespace(t *testing.T) {
	r := NewLocalResolver(DefaultAverageSpeedKmh)

	got, err := r.Resolve(context.Background(), "  12.9352 , 77.6245 ", "-12.5,-77.25")
	require.NoError(t, err)
	assert.Greater(t, got.DistanceKm, 0.0)
}

func TestLocalResolver_CustomSpeed(t *testing.T) {
	r := NewLocalResolver(30)

	got, err := r.Resolve(context.Background(), "12.9352,77.6245", "12.9716,77.5946")
	require.NoError(t, err)
	assert.InDelta(t, got.DistanceKm/30*60, got.DurationMin, 1e-9)
}

func TestLocalResolver_NonPositiveSpeedFallsBack(t *testing.T) {
	r := NewLocalResolver(0)
	assert.Equal(t, DefaultAverageSpeedKmh, r.speedKmh)
}

func TestLocalResolver_Failures(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		wantReason  Reason
	}{
		{
			name:        "address origin",
			origin:      "BTM Layout",
			destination: "12.9716,77.5946",
			wantReason:  ReasonRemoteNotConfigured,
		},
		{
			name:        "address destination",
			origin:      "12.9352,77.6245",
			destination: "MG Road, Bengaluru",
			wantReason:  ReasonRemoteNotConfigured,
		},
		{
			name:        "integer coordinates",
			origin:      "12,77",
			destination: "12.9716,77.5946",
			wantReason:  ReasonMalformedCoordinates,
		},
		{
			name:        "three components",
			origin:      "12.9352,77.6245,1.0",
			destination: "12.9716,77.5946",
			wantReason:  ReasonMalformedCoordinates,
		},
		{
			name:        "missing longitude",
			origin:      "12.9352,",
			destination: "12.9716,77.5946",
			wantReason:  ReasonMalformedCoordinates,
		},
		{
			name:        "latitude out of range",
			origin:      "91.0,77.6245",
			destination: "12.9716,77.5946",
			wantReason:  ReasonMalformedCoordinates,
		},
		{
			name:        "longitude out of range",
			origin:      "12.9352,180.5",
			destination: "12.9716,77.5946",
			wantReason:  ReasonMalformedCoordinates,
		},
	}

	r := NewLocalResolver(DefaultAverageSpeedKmh)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.origin, tt.destination)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDistanceUnavailable))
			assert.Equal(t, tt.wantReason, ReasonOf(err))
		})
	}
}

func TestLocalResolver_AddressMessageMentionsKey(t *testing.T) {
	r := NewLocalResolver(DefaultAverageSpeedKmh)

	_, err := r.Resolve(context.Background(), "BTM Layout", "MG Road")
	require.Error(t, err)
	assert.Equal(t, remoteNotConfiguredMsg, err.Error())

	_, err = r.Resolve(context.Background(), "12,77", "12.9716,77.5946")
	require.Error(t, err)
	assert.NotEqual(t, remoteNotConfiguredMsg, err.Error())
	assert.Contains(t, err.Error(), "malformed origin coordinates")
}
