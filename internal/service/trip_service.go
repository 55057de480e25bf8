package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tripfolio/internal/domain"
	"tripfolio/internal/port"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 1000
)

// CreateTripInput is the DTO for trip creation.
type CreateTripInput struct {
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
}

// UpdateTripInput is the DTO for partial trip updates. Nil fields are left
// unchanged.
type UpdateTripInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// TripService defines the trip management contract. Every operation is
// scoped to the owning user.
type TripService interface {
	Create(ctx context.Context, userID string, input CreateTripInput) (*domain.Trip, error)
	List(ctx context.Context, userID string) ([]domain.Trip, error)
	Get(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error)
	Update(ctx context.Context, userID string, tripID uuid.UUID, input UpdateTripInput) (*domain.Trip, error)
	Delete(ctx context.Context, userID string, tripID uuid.UUID) error
}

type tripService struct {
	tripRepo port.TripRepository
}

// NewTripService creates a new TripService implementation.
func NewTripService(tripRepo port.TripRepository) TripService {
	return &tripService{tripRepo: tripRepo}
}

func (s *tripService) Create(ctx context.Context, userID string, input CreateTripInput) (*domain.Trip, error) {
	if err := validateTripFields(input.Name, input.Description, input.StartDate, input.EndDate, true); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	return s.tripRepo.ListByUser(ctx, userID)
}

func (s *tripService) Get(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error) {
	return s.tripRepo.GetByID(ctx, userID, tripID)
}

func (s *tripService) Update(ctx context.Context, userID string, tripID uuid.UUID, input UpdateTripInput) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trip.Name = *input.Name
	}
	if input.Description != nil {
		trip.Description = input.Description
	}
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}

	// Validate the merged result so a single-bound update is still checked
	// against the stored other bound.
	if err := validateTripFields(trip.Name, trip.Description, trip.StartDate, trip.EndDate, true); err != nil {
		return nil, err
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	return s.tripRepo.Delete(ctx, userID, tripID)
}

// validateTripFields checks every rule and collects every failing field.
func validateTripFields(name string, description *string, start, end time.Time, datesRequired bool) error {
	v := domain.NewValidationError()

	if strings.TrimSpace(name) == "" {
		v.Add("name", "trip name is required")
	} else if utf8.RuneCountInString(name) > maxNameLen {
		v.Add("name", "trip name must be 255 characters or less")
	}

	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		v.Add("description", "description must be 1000 characters or less")
	}

	if datesRequired && start.IsZero() {
		v.Add("startDate", "start date is required")
	}
	if datesRequired && end.IsZero() {
		v.Add("endDate", "end date is required")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		v.Add("endDate", "end date must be on or after start date")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}
