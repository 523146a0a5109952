package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerDay = 24 * 60
)

var (
	ErrInvalidClockTime = errors.New("time must be HH:MM in 24-hour format")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
)

// ClockTime is a wall-clock time of day in minutes since midnight.
// 24:00 (MinutesPerDay) is only meaningful as an exclusive end bound.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts "H:MM" or "HH:MM" and normalizes to HH:MM.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 || !allDigits(h) || !allDigits(m) {
		return ClockTime{}, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// strconv.Atoi would also take a leading sign.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func MustParseClockTime(s string) ClockTime {
	t, err := ParseClockTime(s)
	if err != nil {
		panic(fmt.Sprintf("slot: %q: %v", s, err))
	}
	return t
}

func ClockTimeFromMinutes(minutes int) (ClockTime, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: minutes}, nil
}

func (t ClockTime) Minutes() int {
	return t.minutes
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.minutes < other.minutes
}

func (t ClockTime) IsMidnight() bool {
	return t.minutes == 0
}

// Add returns t shifted by the given minutes, capped at 24:00.
func (t ClockTime) Add(minutes int) ClockTime {
	return ClockTime{minutes: min(t.minutes+minutes, MinutesPerDay)}
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
