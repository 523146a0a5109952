//go:build unit

package slot_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
		errIs    error
	}{
		{in: "14:00", expected: "14:00"},
		{in: "9:30", expected: "09:30"},
		{in: " 08:00 ", expected: "08:00"},
		{in: "24:00", expected: "24:00"},
		{in: "24:30", errIs: slot.ErrInvalidClockTime},
		{in: "25:00", errIs: slot.ErrInvalidClockTime},
		{in: "12:60", errIs: slot.ErrInvalidClockTime},
		{in: "1400", errIs: slot.ErrInvalidClockTime},
		{in: "12:0", errIs: slot.ErrInvalidClockTime},
		{in: "", errIs: slot.ErrInvalidClockTime},
		{in: "09:+5", errIs: slot.ErrInvalidClockTime},
		{in: "+9:00", errIs: slot.ErrInvalidClockTime},
		{in: "-0:00", errIs: slot.ErrInvalidClockTime},
		{in: "1a:00", errIs: slot.ErrInvalidClockTime},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			actual, err := slot.ParseClockTime(tc.in)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
		})
	}
}

func TestClockTimeAdd_CapsAtEndOfDay(t *testing.T) {
	assert.Equal(t, "24:00", slot.MustParseClockTime("23:00").Add(60).String())
	assert.Equal(t, "24:00", slot.MustParseClockTime("23:30").Add(60).String())
	assert.Equal(t, "10:30", slot.MustParseClockTime("09:00").Add(90).String())
}

func TestDate(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		d, err := slot.ParseDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", d.String())
		assert.Equal(t, time.Sunday, d.Weekday())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, in := range []string{"2025-6-1", "01/06/2025", "2025-02-30", ""} {
			_, err := slot.ParseDate(in)
			assert.ErrorIs(t, err, slot.ErrInvalidDate, in)
		}
	})

	t.Run("date of an instant uses its location", func(t *testing.T) {
		bangkok := time.FixedZone("ICT", 7*60*60)
		instant := time.Date(2025, 5, 31, 20, 0, 0, 0, time.UTC)

		assert.Equal(t, "2025-05-31", slot.DateOf(instant).String())
		assert.Equal(t, "2025-06-01", slot.DateOf(instant.In(bangkok)).String())
	})

	t.Run("ordering", func(t *testing.T) {
		assert.True(t, slot.MustParseDate("2025-05-31").Before(slot.MustParseDate("2025-06-01")))
		assert.False(t, slot.MustParseDate("2025-06-01").Before(slot.MustParseDate("2025-06-01")))
	})
}

func TestIdentity(t *testing.T) {
	courtID := uuid.MustParse("0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0001")

	t.Run("key round trip", func(t *testing.T) {
		id, err := slot.Parse(courtID.String(), "2025-06-01", "9:00")
		require.NoError(t, err)
		assert.Equal(t, "0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0001:2025-06-01:09:00", id.Key())

		parsed, err := slot.ParseKey(id.Key())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("normalized times compare equal", func(t *testing.T) {
		a, err := slot.Parse(courtID.String(), "2025-06-01", "9:00")
		require.NoError(t, err)
		b, err := slot.Parse(courtID.String(), "2025-06-01", "09:00")
		require.NoError(t, err)
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name  string
			court string
			date  string
			start string
			errIs error
		}{
			{name: "bad court", court: "nope", date: "2025-06-01", start: "09:00", errIs: slot.ErrMissingCourt},
			{name: "nil court", court: uuid.Nil.String(), date: "2025-06-01", start: "09:00", errIs: slot.ErrMissingCourt},
			{name: "bad date", court: courtID.String(), date: "June 1", start: "09:00", errIs: slot.ErrInvalidDate},
			{name: "start at end of day", court: courtID.String(), date: "2025-06-01", start: "24:00", errIs: slot.ErrStartOutOfDay},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := slot.Parse(tc.court, tc.date, tc.start)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := slot.ParseKey("no-separators")
		assert.ErrorIs(t, err, slot.ErrMalformedKey)
	})
}
