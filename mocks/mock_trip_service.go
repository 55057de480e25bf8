package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tripfolio/internal/domain"
	"tripfolio/internal/service"
)

// MockTripService is a mock implementation of service.TripService.
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Create(ctx context.Context, userID string, input service.CreateTripInput) (*domain.Trip, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) Get(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error) {
	args := m.Called(ctx, userID, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) Update(ctx context.Context, userID string, tripID uuid.UUID, input service.UpdateTripInput) (*domain.Trip, error) {
	args := m.Called(ctx, userID, tripID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	args := m.Called(ctx, userID, tripID)
	return args.Error(0)
}
