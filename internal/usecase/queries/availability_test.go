//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	queriesmock "court-booking/tests/mock/queries"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	courtA = court.Court{ID: uuid.MustParse("0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0001"), Name: "Court A", SortOrder: 1}
	courtB = court.Court{ID: uuid.MustParse("0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0002"), Name: "Court B", SortOrder: 2}
	// 2025-06-01 is a Sunday.
	sunday = slot.MustParseDate("2025-06-01")
)

func clockAt(s string) slot.ClockTime {
	return slot.MustParseClockTime(s)
}

func hoursFor(open, close string) court.OperatingHours {
	return court.OperatingHours{Weekday: time.Sunday, Open: clockAt(open), Close: clockAt(close)}
}

func flatRate(minor int64) []court.PricingRule {
	return []court.PricingRule{{
		Name:  "all day",
		Days:  []time.Weekday{time.Sunday},
		Start: clockAt("00:00"),
		End:   clockAt("00:00"),
		Price: booking.MustMoney(minor),
	}}
}

type availabilityFixture struct {
	uow    *sharedmock.MockUnitOfWork
	reader *queriesmock.MockScheduleReader
	locks  *sharedmock.MockLockStore
	q      queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	ctrl := gomock.NewController(t)
	f := &availabilityFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		reader: queriesmock.NewMockScheduleReader(ctrl),
		locks:  sharedmock.NewMockLockStore(ctrl),
	}
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()
	f.q = queries.NewAvailabilityQueries(f.uow, f.reader, f.locks, config.NewTestConfig())
	return f
}

// expectOpenDay wires a normal open day; nil maps mean "no data".
func (f *availabilityFixture) expectOpenDay(
	hours map[uuid.UUID]court.OperatingHours,
	rules map[uuid.UUID][]court.PricingRule,
	occupied []slot.Identity,
) {
	f.reader.EXPECT().ActiveCourts(gomock.Any(), gomock.Any()).Return([]court.Court{courtA, courtB}, nil)
	f.reader.EXPECT().ClosedDate(gomock.Any(), gomock.Any(), sunday).Return(nil, nil)
	f.reader.EXPECT().OperatingHours(gomock.Any(), gomock.Any(), time.Sunday).Return(hours, nil)
	f.reader.EXPECT().PricingRules(gomock.Any(), gomock.Any(), time.Sunday).Return(rules, nil)
	f.reader.EXPECT().OccupiedSlots(gomock.Any(), gomock.Any(), sunday).Return(occupied, nil)
}

func starts(slots []queries.SlotView) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.String()
	}
	return out
}

func TestGetAvailability_Grid(t *testing.T) {
	f := newAvailabilityFixture(t)
	taken := slot.Identity{CourtID: courtA.ID, Date: sunday, Start: clockAt("19:00")}
	f.expectOpenDay(
		map[uuid.UUID]court.OperatingHours{
			courtA.ID: hoursFor("18:00", "00:00"),
			courtB.ID: {Weekday: time.Sunday, Closed: true},
		},
		map[uuid.UUID][]court.PricingRule{
			courtA.ID: {
				{Name: "peak", Days: []time.Weekday{time.Sunday}, Start: clockAt("18:00"), End: clockAt("22:00"), Price: booking.MustMoney(50000), Priority: 10},
				{Name: "late", Days: []time.Weekday{time.Sunday}, Start: clockAt("22:00"), End: clockAt("23:00"), Price: booking.MustMoney(30000)},
			},
		},
		[]slot.Identity{taken},
	)

	view, err := f.q.GetAvailability(context.Background(), sunday)

	require.NoError(t, err)
	require.Len(t, view.Courts, 2)

	a := view.Courts[0]
	assert.False(t, a.Closed)
	assert.Equal(t, []string{"18:00", "19:00", "20:00", "21:00", "22:00", "23:00"}, starts(a.Slots))
	assert.Equal(t, "24:00", a.Slots[5].End.String())
	assert.Equal(t, queries.SlotBooked, a.Slots[1].Status)
	assert.Equal(t, queries.SlotAvailable, a.Slots[0].Status)
	assert.Equal(t, int64(50000), a.Slots[0].Price.Minor())
	assert.Equal(t, int64(30000), a.Slots[4].Price.Minor())
	assert.False(t, a.Slots[5].Priced, "23:00 has no matching rule")

	b := view.Courts[1]
	assert.True(t, b.Closed)
	assert.Empty(t, b.Slots)
}

func TestGetAvailability_ClosedDate(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.reader.EXPECT().ActiveCourts(gomock.Any(), gomock.Any()).Return([]court.Court{courtA, courtB}, nil)
	f.reader.EXPECT().ClosedDate(gomock.Any(), gomock.Any(), sunday).
		Return(&court.ClosedDate{Date: sunday, Reason: "Songkran"}, nil)

	view, err := f.q.GetAvailability(context.Background(), sunday)

	require.NoError(t, err)
	require.Len(t, view.Courts, 2)
	for _, c := range view.Courts {
		assert.True(t, c.Closed)
		assert.Equal(t, "Songkran", c.ClosedReason)
		assert.Empty(t, c.Slots)
	}
}

func TestGetAvailability_Errors(t *testing.T) {
	t.Run("zero date", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.q.GetAvailability(context.Background(), slot.Date{})

		assert.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("reader failure propagates", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		boom := errors.New("boom")
		f.reader.EXPECT().ActiveCourts(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := f.q.GetAvailability(context.Background(), sunday)

		assert.ErrorIs(t, err, boom)
	})
}

func TestGetAvailabilityFor_LockOverlay(t *testing.T) {
	const me, other = "holder-me", "holder-other"

	testCases := []struct {
		name     string
		holders  map[string]string
		lockErr  error
		expected map[string]queries.LockMark
	}{
		{
			name: "own and foreign holds are told apart",
			holders: map[string]string{
				slot.Identity{CourtID: courtA.ID, Date: sunday, Start: clockAt("08:00")}.Key(): me,
				slot.Identity{CourtID: courtA.ID, Date: sunday, Start: clockAt("09:00")}.Key(): other,
			},
			expected: map[string]queries.LockMark{"08:00": queries.LockSelf, "09:00": queries.LockOther, "10:00": queries.LockNone},
		},
		{
			name:     "lock store outage degrades to the durable view",
			lockErr:  errs.NewStoreUnavailable("redis", "holders", context.DeadlineExceeded),
			expected: map[string]queries.LockMark{"08:00": queries.LockNone, "09:00": queries.LockNone},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)
			f.expectOpenDay(
				map[uuid.UUID]court.OperatingHours{courtA.ID: hoursFor("08:00", "11:00")},
				map[uuid.UUID][]court.PricingRule{courtA.ID: flatRate(35000)},
				nil,
			)
			f.locks.EXPECT().Holders(gomock.Any(), gomock.Len(3)).Return(tc.holders, tc.lockErr)

			view, err := f.q.GetAvailabilityFor(context.Background(), sunday, me)

			require.NoError(t, err)
			for _, s := range view.Courts[0].Slots {
				if want, ok := tc.expected[s.Start.String()]; ok {
					assert.Equal(t, want, s.Lock, s.Start.String())
				}
			}
		})
	}
}
