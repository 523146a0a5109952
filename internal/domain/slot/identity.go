package slot

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingCourt  = errors.New("court id is required")
	ErrMissingDate   = errors.New("date is required")
	ErrStartOutOfDay = errors.New("start time must be before 24:00")
	ErrMalformedKey  = errors.New("malformed slot key")
)

// Identity is the (court, date, start) tuple that bookings and locks contend on.
type Identity struct {
	CourtID uuid.UUID
	Date    Date
	Start   ClockTime
}

func NewIdentity(courtID uuid.UUID, date Date, start ClockTime) (Identity, error) {
	id := Identity{CourtID: courtID, Date: date, Start: start}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Parse builds an identity from wire strings, normalizing the time.
func Parse(courtID, date, start string) (Identity, error) {
	cid, err := uuid.Parse(strings.TrimSpace(courtID))
	if err != nil {
		return Identity{}, ErrMissingCourt
	}
	d, err := ParseDate(date)
	if err != nil {
		return Identity{}, err
	}
	t, err := ParseClockTime(start)
	if err != nil {
		return Identity{}, err
	}
	return NewIdentity(cid, d, t)
}

func (id Identity) Validate() error {
	if id.CourtID == uuid.Nil {
		return ErrMissingCourt
	}
	if id.Date.IsZero() {
		return ErrMissingDate
	}
	if id.Start.Minutes() >= MinutesPerDay {
		return ErrStartOutOfDay
	}
	return nil
}

// Key is the canonical string form; two identities are equal iff keys match.
func (id Identity) Key() string {
	return id.CourtID.String() + ":" + id.Date.String() + ":" + id.Start.String()
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (Identity, error) {
	court, rest, ok := strings.Cut(key, ":")
	if !ok {
		return Identity{}, ErrMalformedKey
	}
	date, start, ok := strings.Cut(rest, ":")
	if !ok {
		return Identity{}, ErrMalformedKey
	}
	return Parse(court, date, start)
}

func (id Identity) String() string {
	return id.Key()
}
