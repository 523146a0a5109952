//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
	queriesmock "court-booking/tests/mock/queries"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	courtA   = uuid.MustParse("0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0001")
	testDate = slot.MustParseDate("2025-06-01")
	u1       = shared.Actor{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000a1"), Role: user.RoleCustomer}
	u2       = shared.Actor{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000a2"), Role: user.RoleCustomer}
)

type fixture struct {
	ctrl           *gomock.Controller
	uow            *sharedmock.MockUnitOfWork
	tx             *sharedmock.MockTx
	reads          *sharedmock.MockCommandReads
	bookingRepo    *sharedmock.MockBookingRepository
	idempotency    *sharedmock.MockIdempotencyRepository
	notifications  *sharedmock.MockNotificationRepository
	locks          *sharedmock.MockLockStore
	availability   *queriesmock.MockAvailabilityQueries
	bookingQueries *queriesmock.MockBookingQueries
	clock          *clock.FixedClock
	metrics        *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:           ctrl,
		uow:            sharedmock.NewMockUnitOfWork(ctrl),
		tx:             sharedmock.NewMockTx(ctrl),
		reads:          sharedmock.NewMockCommandReads(ctrl),
		bookingRepo:    sharedmock.NewMockBookingRepository(ctrl),
		idempotency:    sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications:  sharedmock.NewMockNotificationRepository(ctrl),
		locks:          sharedmock.NewMockLockStore(ctrl),
		availability:   queriesmock.NewMockAvailabilityQueries(ctrl),
		bookingQueries: queriesmock.NewMockBookingQueries(ctrl),
		clock:          clock.NewFixedClock(time.Date(2025, 5, 31, 3, 0, 0, 0, time.UTC)),
		metrics:        metrics.New(prometheus.NewRegistry()),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookingRepo).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	return f
}

func (f *fixture) reservations(t *testing.T) commands.ReservationCommands {
	t.Helper()
	cmds, err := commands.NewReservationUseCase(
		f.uow, f.locks, f.availability, f.bookingQueries, f.metrics, f.clock, config.NewTestConfig(),
	)
	require.NoError(t, err)
	return cmds
}

func (f *fixture) bookingCommands() commands.BookingCommands {
	return commands.NewBookingUseCase(f.uow, f.bookingQueries, f.clock)
}

func slotAt(t *testing.T, start string) slot.Identity {
	t.Helper()
	id, err := slot.NewIdentity(courtA, testDate, slot.MustParseClockTime(start))
	require.NoError(t, err)
	return id
}

// gridView renders courtA open 08:00-22:00 at 350.00 per hour with the given
// starts booked.
func gridView(booked ...string) *queries.AvailabilityView {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	ca := queries.CourtAvailability{CourtID: courtA, CourtName: "Court A"}
	for m := 8 * 60; m < 22*60; m += 60 {
		start, _ := slot.ClockTimeFromMinutes(m)
		sv := queries.SlotView{
			Start:  start,
			End:    start.Add(60),
			Price:  booking.MustMoney(35000),
			Priced: true,
			Status: queries.SlotAvailable,
		}
		if taken[start.String()] {
			sv.Status = queries.SlotBooked
		}
		ca.Slots = append(ca.Slots, sv)
	}
	return &queries.AvailabilityView{Date: testDate, Courts: []queries.CourtAvailability{ca}}
}

func checkoutInput(ids ...slot.Identity) commands.CheckoutInput {
	return commands.CheckoutInput{
		Items: ids,
		Customer: commands.CustomerInput{
			Name:  "Somchai",
			Phone: "0812345678",
			Email: "somchai@example.com",
		},
		Participants: []commands.ParticipantInput{
			{Name: "Somchai", Phone: "0812345678", SportType: "badminton", IsBooker: true},
		},
	}
}
