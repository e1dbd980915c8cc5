package service

import (
	"context"
	"testing"
	"time"

	"fare-compare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedResolver_Resolve(t *testing.T) {
	ttl := time.Hour
	hit := &models.DistanceResult{DistanceKm: 6.4, DurationMin: 21.5}
	fresh := models.DistanceResult{DistanceKm: 7.2, DurationMin: 25}

	tests := []struct {
		name        string
		cached      *models.DistanceResult
		getErr      error
		putErr      error
		remote      models.DistanceResult
		remoteErr   error
		expectCall  bool
		expectPut   bool
		expected    models.DistanceResult
		expectError bool
	}{
		{
			name:     "cache hit skips remote",
			cached:   hit,
			expected: *hit,
		},
		{
			name:       "cache miss stores remote result",
			remote:     fresh,
			expectCall: true,
			expectPut:  true,
			expected:   fresh,
		},
		{
			name:       "cache read error falls through",
			getErr:     assert.AnError,
			remote:     fresh,
			expectCall: true,
			expectPut:  true,
			expected:   fresh,
		},
		{
			name:       "cache write error is ignored",
			putErr:     assert.AnError,
			remote:     fresh,
			expectCall: true,
			expectPut:  true,
			expected:   fresh,
		},
		{
			name:        "remote error is not cached",
			remoteErr:   unavailable(ReasonRemoteFailure, remoteFailedMsg, nil),
			expectCall:  true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			cache := new(MockDistanceCache)
			remote := new(MockDistanceResolver)
			resolver := NewCachedResolver(remote, cache, ttl)

			cache.On("Get", mock.Anything, "BTM Layout", "MG Road", ttl).Return(tt.cached, tt.getErr)
			if tt.expectCall {
				remote.On("Resolve", mock.Anything, "BTM  Layout", " MG Road").Return(tt.remote, tt.remoteErr)
			}
			if tt.expectPut {
				cache.On("Put", mock.Anything, "BTM Layout", "MG Road", tt.remote).Return(tt.putErr)
			}

			// Execute
			result, err := resolver.Resolve(context.Background(), "BTM  Layout", " MG Road")

			// Assert
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, ReasonRemoteFailure, ReasonOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			cache.AssertExpectations(t)
			remote.AssertExpectations(t)
			if !tt.expectPut {
				cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
