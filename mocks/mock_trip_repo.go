package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tripfolio/internal/domain"
)

// MockTripRepo is a mock implementation of port.TripRepository.
type MockTripRepo struct {
	mock.Mock
}

func (m *MockTripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepo) GetByID(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error) {
	args := m.Called(ctx, userID, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepo) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepo) Update(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepo) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	args := m.Called(ctx, userID, tripID)
	return args.Error(0)
}
