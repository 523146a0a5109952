package queries

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// LockMark is set only on views built for a known holder.
type LockMark string

const (
	LockNone  LockMark = ""
	LockSelf  LockMark = "self"
	LockOther LockMark = "other"
)

type SlotView struct {
	Start  slot.ClockTime
	End    slot.ClockTime
	Price  booking.Money
	Priced bool
	Status SlotStatus
	Lock   LockMark
}

type CourtAvailability struct {
	CourtID      uuid.UUID
	CourtName    string
	Closed       bool
	ClosedReason string
	Slots        []SlotView
}

type AvailabilityView struct {
	Date   slot.Date
	Courts []CourtAvailability
}

// Slot finds the grid entry for id, if the court is open at that time.
func (v *AvailabilityView) Slot(id slot.Identity) (CourtAvailability, SlotView, bool) {
	if v.Date != id.Date {
		return CourtAvailability{}, SlotView{}, false
	}
	for _, c := range v.Courts {
		if c.CourtID != id.CourtID {
			continue
		}
		for _, s := range c.Slots {
			if s.Start == id.Start {
				return c, s, true
			}
		}
		return c, SlotView{}, false
	}
	return CourtAvailability{}, SlotView{}, false
}

type BookingItemView struct {
	CourtID    uuid.UUID  `json:"court_id"`
	CourtName  string     `json:"court_name"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	PriceMinor int64      `json:"price_minor"`
	StaffID    *uuid.UUID `json:"staff_id,omitempty"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

type ParticipantView struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	SportType string `json:"sport_type"`
	Age       *int   `json:"age,omitempty"`
	IsBooker  bool   `json:"is_booker"`
}

type BookingView struct {
	ID            uuid.UUID         `json:"id"`
	BookingNumber string            `json:"booking_number"`
	CustomerID    uuid.UUID         `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	Status        string            `json:"status"`
	TotalMinor    int64             `json:"total_minor"`
	Note          string            `json:"note"`
	Items         []BookingItemView `json:"items"`
	Participants  []ParticipantView `json:"participants"`
	ConfirmedAt   *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type HeldSlotView struct {
	CourtID   uuid.UUID
	Date      string
	StartTime string
	ExpiresAt time.Time
	Remaining time.Duration
}

type LockView struct {
	Slot      slot.Identity
	Held      bool
	HolderID  string
	Remaining time.Duration
}
