package service

import (
	"context"
	"time"

	"fare-compare-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDistanceResolver is a mock implementation of the DistanceResolver interface
type MockDistanceResolver struct {
	mock.Mock
}

func (m *MockDistanceResolver) Resolve(ctx context.Context, origin, destination string) (models.DistanceResult, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(models.DistanceResult), args.Error(1)
}

// MockDistanceCache is a mock implementation of the DistanceCache interface
type MockDistanceCache struct {
	mock.Mock
}

func (m *MockDistanceCache) Get(ctx context.Context, origin, destination string, maxAge time.Duration) (*models.DistanceResult, error) {
	args := m.Called(ctx, origin, destination, maxAge)
	return args.Get(0).(*models.DistanceResult), args.Error(1)
}

func (m *MockDistanceCache) Put(ctx context.Context, origin, destination string, result models.DistanceResult) error {
	args := m.Called(ctx, origin, destination, result)
	return args.Error(0)
}
