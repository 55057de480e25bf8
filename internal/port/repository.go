package port

import (
	"context"

	"github.com/google/uuid"

	"tripfolio/internal/domain"
)

// TripRepository defines the contract for trip persistence.
// Every query method takes the owner's userID so ownership scoping happens
// at the data layer: a trip that exists but belongs to someone else is
// indistinguishable from one that does not exist.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	GetByID(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, userID string, tripID uuid.UUID) error
}
