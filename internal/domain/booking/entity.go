package booking

import (
	"errors"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptyBooking            = errors.New("booking must contain at least one slot")
	ErrDuplicateSlot           = errors.New("the same slot appears more than once")
	ErrItemEndBeforeStart      = errors.New("item end time must be after start time")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrMissingCustomerID       = errors.New("customer id is required")
)

// Item occupies exactly one slot on behalf of its booking.
type Item struct {
	slot    slot.Identity
	end     slot.ClockTime
	price   Money
	staffID *uuid.UUID
}

func NewItem(id slot.Identity, end slot.ClockTime, price Money, staffID *uuid.UUID) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if end.Minutes() <= id.Start.Minutes() {
		return Item{}, ErrItemEndBeforeStart
	}
	return Item{slot: id, end: end, price: price, staffID: staffID}, nil
}

func (i Item) Slot() slot.Identity { return i.slot }
func (i Item) End() slot.ClockTime { return i.end }
func (i Item) Price() Money { return i.price }
func (i Item) StaffID() *uuid.UUID { return i.staffID }

type Booking struct {
	id           uuid.UUID
	number       Number
	customerID   uuid.UUID
	customer     Customer
	participants []Participant
	items        []Item
	status       Status
	total        Money
	note         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(
	number Number,
	customerID uuid.UUID,
	customer Customer,
	participants []Participant,
	items []Item,
	note string,
	now time.Time,
) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomerID
	}
	if len(items) == 0 {
		return nil, ErrEmptyBooking
	}

	seen := make(map[string]struct{}, len(items))
	var total Money
	for _, it := range items {
		key := it.slot.Key()
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateSlot
		}
		seen[key] = struct{}{}
		total = total.Add(it.price)
	}

	return &Booking{
		id:           uuid.New(),
		number:       number,
		customerID:   customerID,
		customer:     customer,
		participants: participants,
		items:        items,
		status:       StatusPending,
		total:        total,
		note:         note,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Rehydrate rebuilds a booking loaded from storage without re-running creation rules.
func Rehydrate(
	id uuid.UUID,
	number Number,
	customerID uuid.UUID,
	customer Customer,
	participants []Participant,
	items []Item,
	status Status,
	total Money,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		number:       number,
		customerID:   customerID,
		customer:     customer,
		participants: participants,
		items:        items,
		status:       status,
		total:        total,
		note:         note,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) Number() Number { return b.number }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) Customer() Customer { return b.customer }
func (b *Booking) Participants() []Participant { return b.participants }
func (b *Booking) Items() []Item { return b.items }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) Total() Money { return b.total }
func (b *Booking) Note() string { return b.note }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) Slots() []slot.Identity {
	out := make([]slot.Identity, len(b.items))
	for i, it := range b.items {
		out[i] = it.slot
	}
	return out
}

// Renumber replaces the booking number after a uniqueness collision.
func (b *Booking) Renumber(n Number) {
	b.number = n
}

// Confirm marks payment as verified.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidStatusTransition
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel releases the booking's slots; items are kept for history.
func (b *Booking) Cancel(now time.Time) error {
	if !b.status.Occupies() {
		return ErrInvalidStatusTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.customerID == customerID
}
