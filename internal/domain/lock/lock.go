package lock

import (
	"time"

	"court-booking/internal/domain/slot"
)

// DefaultTTL bounds how long a cart may soft-hold a slot. Re-acquiring an
// already-held slot does not extend it: total hold time is capped at TTL
// from the first acquisition.
const DefaultTTL = 20 * time.Minute

// Lock is an ephemeral single-holder claim on a slot.
type Lock struct {
	Slot      slot.Identity
	HolderID  string
	ExpiresAt time.Time
}

func (l Lock) Remaining(now time.Time) time.Duration {
	if d := l.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

func (l Lock) HeldBy(holderID string) bool {
	return holderID != "" && l.HolderID == holderID
}
