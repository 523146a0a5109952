package court

import (
	"errors"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidHours       = errors.New("open time must be before close time")
	ErrInvalidGranularity = errors.New("slot granularity must be a positive number of minutes")
)

type Court struct {
	ID        uuid.UUID
	Name      string
	SortOrder int
}

// OperatingHours is one court's schedule for one weekday.
type OperatingHours struct {
	Weekday time.Weekday
	Open    slot.ClockTime
	Close   slot.ClockTime
	Closed  bool
}

// CloseMinutes treats a 00:00 close as end of day so venues can run until midnight.
func (h OperatingHours) CloseMinutes() int {
	if h.Close.IsMidnight() {
		return slot.MinutesPerDay
	}
	return h.Close.Minutes()
}

func (h OperatingHours) Validate() error {
	if h.Closed {
		return nil
	}
	if h.Open.Minutes() >= h.CloseMinutes() {
		return ErrInvalidHours
	}
	return nil
}

// Grid returns the slot start times from open while strictly before close.
func (h OperatingHours) Grid(step time.Duration) ([]slot.ClockTime, error) {
	stepMin := int(step / time.Minute)
	if stepMin <= 0 {
		return nil, ErrInvalidGranularity
	}
	if h.Closed {
		return nil, nil
	}
	end := h.CloseMinutes()
	grid := make([]slot.ClockTime, 0, max(0, (end-h.Open.Minutes())/stepMin))
	for m := h.Open.Minutes(); m < end; m += stepMin {
		t, err := slot.ClockTimeFromMinutes(m)
		if err != nil {
			return nil, err
		}
		grid = append(grid, t)
	}
	return grid, nil
}

type ClosedDate struct {
	Date   slot.Date
	Reason string
}
