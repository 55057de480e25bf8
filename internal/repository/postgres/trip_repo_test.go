package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripfolio/internal/domain"
	"tripfolio/internal/port"
	"tripfolio/internal/repository/postgres"
)

var tripColumns = []string{
	"id", "user_id", "name", "description",
	"start_date", "end_date", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (port.TripRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return postgres.NewTripRepo(db), mock
}

func sampleTrip() *domain.Trip {
	desc := "two weeks island hopping"
	return &domain.Trip{
		ID:          uuid.New(),
		UserID:      "user_abc",
		Name:        "Greece 2026",
		Description: &desc,
		StartDate:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTripRepo_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()

	mock.ExpectExec("INSERT INTO trips").
		WithArgs(trip.ID, trip.UserID, trip.Name, trip.Description,
			trip.StartDate, trip.EndDate, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.False(t, trip.CreatedAt.IsZero())
	assert.Equal(t, trip.CreatedAt, trip.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(tripColumns).
		AddRow(trip.ID, trip.UserID, trip.Name, trip.Description,
			trip.StartDate, trip.EndDate, now, now)
	mock.ExpectQuery("SELECT \\* FROM trips WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(trip.ID, trip.UserID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), trip.UserID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.Name, got.Name)
	assert.Equal(t, *trip.Description, *got.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	tripID := uuid.New()

	mock.ExpectQuery("SELECT \\* FROM trips").
		WithArgs(tripID, "user_abc").
		WillReturnRows(sqlmock.NewRows(tripColumns))

	_, err := repo.GetByID(context.Background(), "user_abc", tripID)

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_ListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(tripColumns).
		AddRow(uuid.New(), "user_abc", "Greece 2026", nil,
			time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), now, now).
		AddRow(uuid.New(), "user_abc", "Lisbon", nil,
			time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC), now, now)
	mock.ExpectQuery("SELECT \\* FROM trips WHERE user_id = \\$1 ORDER BY start_date DESC").
		WithArgs("user_abc").
		WillReturnRows(rows)

	trips, err := repo.ListByUser(context.Background(), "user_abc")

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Greece 2026", trips[0].Name)
	assert.Nil(t, trips[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_ListByUser_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM trips WHERE user_id = \\$1").
		WithArgs("user_none").
		WillReturnRows(sqlmock.NewRows(tripColumns))

	trips, err := repo.ListByUser(context.Background(), "user_none")

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestTripRepo_Update(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()

	mock.ExpectExec("UPDATE trips SET").
		WithArgs(trip.Name, trip.Description, trip.StartDate, trip.EndDate,
			sqlmock.AnyArg(), trip.ID, trip.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), trip)

	require.NoError(t, err)
	assert.False(t, trip.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()

	mock.ExpectExec("UPDATE trips SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)
	tripID := uuid.New()

	mock.ExpectExec("DELETE FROM trips WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(tripID, "user_abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "user_abc", tripID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	tripID := uuid.New()

	mock.ExpectExec("DELETE FROM trips").
		WithArgs(tripID, "user_abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "user_abc", tripID)

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}
