//go:build unit

package court_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) slot.ClockTime {
	return slot.MustParseClockTime(s)
}

func gridStrings(grid []slot.ClockTime) []string {
	out := make([]string, len(grid))
	for i, g := range grid {
		out[i] = g.String()
	}
	return out
}

func TestOperatingHoursGrid(t *testing.T) {
	testCases := []struct {
		name     string
		hours    court.OperatingHours
		step     time.Duration
		expected []string
		errIs    error
	}{
		{
			name:     "hourly",
			hours:    court.OperatingHours{Open: at("08:00"), Close: at("11:00")},
			step:     time.Hour,
			expected: []string{"08:00", "09:00", "10:00"},
		},
		{
			name:     "half hourly",
			hours:    court.OperatingHours{Open: at("08:00"), Close: at("09:30")},
			step:     30 * time.Minute,
			expected: []string{"08:00", "08:30", "09:00"},
		},
		{
			name:     "midnight close runs to end of day",
			hours:    court.OperatingHours{Open: at("21:00"), Close: at("00:00")},
			step:     time.Hour,
			expected: []string{"21:00", "22:00", "23:00"},
		},
		{
			name:     "last partial slot is dropped",
			hours:    court.OperatingHours{Open: at("08:00"), Close: at("09:30")},
			step:     time.Hour,
			expected: []string{"08:00", "09:00"},
		},
		{
			name:     "closed weekday",
			hours:    court.OperatingHours{Closed: true},
			step:     time.Hour,
			expected: []string{},
		},
		{
			name:  "zero step",
			hours: court.OperatingHours{Open: at("08:00"), Close: at("09:00")},
			step:  0,
			errIs: court.ErrInvalidGranularity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := tc.hours.Grid(tc.step)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, gridStrings(grid))
		})
	}
}

func TestOperatingHoursValidate(t *testing.T) {
	assert.NoError(t, court.OperatingHours{Open: at("18:00"), Close: at("00:00")}.Validate())
	assert.NoError(t, court.OperatingHours{Closed: true}.Validate())
	assert.ErrorIs(t, court.OperatingHours{Open: at("10:00"), Close: at("09:00")}.Validate(), court.ErrInvalidHours)
	assert.ErrorIs(t, court.OperatingHours{Open: at("10:00"), Close: at("10:00")}.Validate(), court.ErrInvalidHours)
}

func TestPriceBook(t *testing.T) {
	weekend := []time.Weekday{time.Saturday, time.Sunday}
	book := court.NewPriceBook([]court.PricingRule{
		{Name: "base", Days: weekend, Start: at("00:00"), End: at("00:00"), Price: booking.MustMoney(30000)},
		{Name: "evening", Days: weekend, Start: at("18:00"), End: at("22:00"), Price: booking.MustMoney(50000), Priority: 10},
	})

	testCases := []struct {
		name     string
		day      time.Weekday
		start    string
		expected int64
		priced   bool
	}{
		{name: "higher priority wins", day: time.Sunday, start: "18:00", expected: 50000, priced: true},
		{name: "end bound is exclusive", day: time.Sunday, start: "22:00", expected: 30000, priced: true},
		{name: "midnight end covers the last hour", day: time.Saturday, start: "23:00", expected: 30000, priced: true},
		{name: "no rule for the weekday", day: time.Monday, start: "18:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, ok := book.PriceAt(tc.day, at(tc.start))

			assert.Equal(t, tc.priced, ok)
			assert.Equal(t, tc.expected, price.Minor())
		})
	}
	assert.Equal(t, 2, book.Len())
}
