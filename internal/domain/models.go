package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a date-ranged trip record owned by a single user.
// UserID is the opaque subject issued by the external identity provider.
type Trip struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	StartDate   time.Time `db:"start_date" json:"startDate"`
	EndDate     time.Time `db:"end_date" json:"endDate"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Booking holds the structured fields extracted from an uploaded booking
// document. It is transient: produced for display only, never persisted.
// Every field is independently nullable because the model may fail to find
// a value in the source document.
type Booking struct {
	Category           *string `json:"type"`
	Name               *string `json:"name"`
	ConfirmationNumber *string `json:"confirmationNumber"`
	Date               *string `json:"date"`
	StartTime          *string `json:"startTime"`
	EndTime            *string `json:"endTime"`
	Location           *string `json:"location"`
	Notes              *string `json:"notes"`
}
