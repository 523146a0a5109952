package request

import (
	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/errs"
)

type SlotRequest struct {
	CourtID   string `json:"courtId" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}

func (r SlotRequest) ToIdentity() (slot.Identity, error) {
	id, err := slot.Parse(r.CourtID, r.Date, r.StartTime)
	if err != nil {
		return slot.Identity{}, errs.NewValidation("items", err.Error())
	}
	return id, nil
}

type ReserveRequest struct {
	Items []SlotRequest `json:"items" binding:"required,min=1,dive"`
}

func (r ReserveRequest) ToIdentities() ([]slot.Identity, error) {
	return toIdentities(r.Items)
}

func toIdentities(items []SlotRequest) ([]slot.Identity, error) {
	ids := make([]slot.Identity, len(items))
	for i, it := range items {
		id, err := it.ToIdentity()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
