//go:build unit || e2e

package builder

import (
	"court-booking/internal/handler/dto/request"
	"court-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	CourtID      uuid.UUID
	Date         string
	StartTimes   []string
	Customer     request.CustomerRequest
	Participants []request.ParticipantRequest
	Note         string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		CourtID:    uuid.New(),
		Date:       "2025-06-01",
		StartTimes: []string{"18:00"},
		Customer: request.CustomerRequest{
			Name:  "Somchai P.",
			Phone: "0812345678",
			Email: "somchai@example.com",
		},
		Participants: []request.ParticipantRequest{
			{Name: "Somchai P.", SportType: "badminton", Age: ptr.Of(32), IsBooker: true},
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) WithCourt(courtID uuid.UUID) *CheckoutBuilder {
	b.CourtID = courtID
	return b
}

func (b *CheckoutBuilder) WithDate(date string) *CheckoutBuilder {
	b.Date = date
	return b
}

func (b *CheckoutBuilder) WithStartTimes(starts ...string) *CheckoutBuilder {
	b.StartTimes = starts
	return b
}

func (b *CheckoutBuilder) BuildSlots() []request.SlotRequest {
	items := make([]request.SlotRequest, len(b.StartTimes))
	for i, start := range b.StartTimes {
		items[i] = request.SlotRequest{
			CourtID:   b.CourtID.String(),
			Date:      b.Date,
			StartTime: start,
		}
	}
	return items
}

func (b *CheckoutBuilder) BuildReserveRequest() request.ReserveRequest {
	return request.ReserveRequest{Items: b.BuildSlots()}
}

func (b *CheckoutBuilder) BuildRequest() request.CheckoutRequest {
	return request.CheckoutRequest{
		Items:        b.BuildSlots(),
		Customer:     b.Customer,
		Participants: b.Participants,
		Note:         b.Note,
	}
}
