package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tripfolio/internal/domain"
	"tripfolio/internal/port"
)

type tripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new PostgreSQL-backed TripRepository.
func NewTripRepo(db *sqlx.DB) port.TripRepository {
	return &tripRepo{db: db}
}

func (r *tripRepo) Create(ctx context.Context, t *domain.Trip) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO trips (id, user_id, name, description, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Name, t.Description, t.StartDate, t.EndDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tripRepo.Create: %w", err)
	}
	return nil
}

func (r *tripRepo) GetByID(ctx context.Context, userID string, tripID uuid.UUID) (*domain.Trip, error) {
	var t domain.Trip
	err := r.db.GetContext(ctx, &t,
		"SELECT * FROM trips WHERE id = $1 AND user_id = $2", tripID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("tripRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *tripRepo) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips := []domain.Trip{}
	err := r.db.SelectContext(ctx, &trips,
		"SELECT * FROM trips WHERE user_id = $1 ORDER BY start_date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("tripRepo.ListByUser: %w", err)
	}
	return trips, nil
}

func (r *tripRepo) Update(ctx context.Context, t *domain.Trip) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE trips SET name = $1, description = $2, start_date = $3, end_date = $4, updated_at = $5
		 WHERE id = $6 AND user_id = $7`,
		t.Name, t.Description, t.StartDate, t.EndDate, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("tripRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *tripRepo) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM trips WHERE id = $1 AND user_id = $2", tripID, userID)
	if err != nil {
		return fmt.Errorf("tripRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}
