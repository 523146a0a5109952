package commands

import (
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Reasons a slot could not be locked for a cart.
const (
	ReasonHeld       = "held"
	ReasonBooked     = "booked"
	ReasonUnbookable = "unbookable"
)

// ReserveOutcome reports what happened to one requested slot. Slots are
// never dropped silently: a refused slot carries its reason.
type ReserveOutcome struct {
	Slot      slot.Identity
	Locked    bool
	Reason    string
	ExpiresAt *time.Time
}

type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

type ParticipantInput struct {
	Name      string
	Phone     string
	SportType string
	Age       *int
	IsBooker  bool
}

type CheckoutInput struct {
	Items        []slot.Identity
	Customer     CustomerInput
	Participants []ParticipantInput
	Note         string
}

type CheckoutResult struct {
	Booking  *queries.BookingView
	Replayed bool
}

// Outbox event topics.
const (
	eventKind             = "booking_event"
	TopicBookingCreated   = "booking.created"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
)

type bookingEventItem struct {
	CourtID    uuid.UUID `json:"court_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	PriceMinor int64     `json:"price_minor"`
}

type bookingEvent struct {
	BookingID     uuid.UUID          `json:"booking_id"`
	BookingNumber string             `json:"booking_number"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	Status        string             `json:"status"`
	TotalMinor    int64              `json:"total_minor"`
	Items         []bookingEventItem `json:"items"`
	OccurredAt    time.Time          `json:"occurred_at"`
}
