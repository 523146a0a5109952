package shared

import (
	"time"

	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// Actor is the authenticated caller. Its ID doubles as the lock holder id.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

func (a Actor) HolderID() string {
	return a.ID.String()
}
