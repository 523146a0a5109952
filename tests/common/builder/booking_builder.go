//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	BookingNumber string
	CustomerID    uuid.UUID
	CourtID       uuid.UUID
	CourtName     string
	Date          string
	StartTimes    []string
	PriceMinor    int64
	Status        booking.Status
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		BookingNumber: "BK202506010001",
		CustomerID:    uuid.New(),
		CourtID:       uuid.New(),
		CourtName:     "Court A",
		Date:          "2025-06-01",
		StartTimes:    []string{"18:00"},
		PriceMinor:    50000,
		Status:        booking.StatusPending,
		CreatedAt:     time.Date(2025, 5, 31, 3, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCustomer(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithStartTimes(starts ...string) *BookingBuilder {
	b.StartTimes = starts
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	items := make([]queries.BookingItemView, len(b.StartTimes))
	for i, start := range b.StartTimes {
		end, _ := time.Parse("15:04", start)
		items[i] = queries.BookingItemView{
			CourtID:    b.CourtID,
			CourtName:  b.CourtName,
			Date:       b.Date,
			StartTime:  start,
			EndTime:    end.Add(time.Hour).Format("15:04"),
			PriceMinor: b.PriceMinor,
		}
	}

	v := &queries.BookingView{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		CustomerID:    b.CustomerID,
		CustomerName:  "Somchai P.",
		CustomerPhone: "0812345678",
		Status:        b.Status.String(),
		TotalMinor:    b.PriceMinor * int64(len(b.StartTimes)),
		Items:         items,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	if b.Status == booking.StatusCancelled {
		at := b.CreatedAt.Add(time.Hour)
		v.CancelledAt = &at
		for i := range v.Items {
			v.Items[i].ReleasedAt = &at
		}
	}
	return v
}
