package response

import (
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	// Price is null when no pricing rule covers the slot.
	Price  *float64 `json:"price"`
	Priced bool     `json:"priced"`
	Status string   `json:"status"`
	Lock   string   `json:"lock,omitempty"`
}

type CourtAvailabilityResponse struct {
	CourtID      uuid.UUID      `json:"courtId"`
	CourtName    string         `json:"courtName"`
	Closed       bool           `json:"closed"`
	ClosedReason string         `json:"closedReason,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) []CourtAvailabilityResponse {
	out := make([]CourtAvailabilityResponse, len(v.Courts))
	for i, c := range v.Courts {
		slots := make([]SlotResponse, len(c.Slots))
		for j, s := range c.Slots {
			sr := SlotResponse{
				StartTime: s.Start.String(),
				EndTime:   s.End.String(),
				Priced:    s.Priced,
				Status:    string(s.Status),
				Lock:      string(s.Lock),
			}
			if s.Priced {
				price := s.Price.Major()
				sr.Price = &price
			}
			slots[j] = sr
		}
		out[i] = CourtAvailabilityResponse{
			CourtID:      c.CourtID,
			CourtName:    c.CourtName,
			Closed:       c.Closed,
			ClosedReason: c.ClosedReason,
			Slots:        slots,
		}
	}
	return out
}
