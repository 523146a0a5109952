package response

import (
	"time"

	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveItemResponse struct {
	CourtID   uuid.UUID  `json:"courtId"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	Locked    bool       `json:"locked"`
	Reason    string     `json:"reason,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type ReserveResponse struct {
	Items []ReserveItemResponse `json:"items"`
}

func FromReserveOutcomes(outcomes []commands.ReserveOutcome) ReserveResponse {
	items := make([]ReserveItemResponse, len(outcomes))
	for i, o := range outcomes {
		items[i] = ReserveItemResponse{
			CourtID:   o.Slot.CourtID,
			Date:      o.Slot.Date.String(),
			StartTime: o.Slot.Start.String(),
			Locked:    o.Locked,
			Reason:    o.Reason,
			ExpiresAt: o.ExpiresAt,
		}
	}
	return ReserveResponse{Items: items}
}

type HeldSlotResponse struct {
	CourtID          uuid.UUID `json:"courtId"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

func FromHeldSlots(views []*queries.HeldSlotView) []HeldSlotResponse {
	out := make([]HeldSlotResponse, len(views))
	for i, v := range views {
		out[i] = HeldSlotResponse{
			CourtID:          v.CourtID,
			Date:             v.Date,
			StartTime:        v.StartTime,
			ExpiresAt:        v.ExpiresAt,
			RemainingSeconds: int64(v.Remaining / time.Second),
		}
	}
	return out
}

type LockResponse struct {
	CourtID          uuid.UUID `json:"courtId"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	Held             bool      `json:"held"`
	HolderID         string    `json:"holderId,omitempty"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

func FromLockView(v *queries.LockView) LockResponse {
	return LockResponse{
		CourtID:          v.Slot.CourtID,
		Date:             v.Slot.Date.String(),
		StartTime:        v.Slot.Start.String(),
		Held:             v.Held,
		HolderID:         v.HolderID,
		RemainingSeconds: int64(v.Remaining / time.Second),
	}
}
