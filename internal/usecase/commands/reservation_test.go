//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra/lockstore"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTryReserve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		starts         []string
		setupMock      func(f *fixture, ids []slot.Identity)
		expectedLocked []bool
		expectedReason []string
		expectedError  error
	}{
		{
			name:   "success: locks every free slot",
			starts: []string{"14:00", "15:00"},
			setupMock: func(f *fixture, ids []slot.Identity) {
				f.availability.EXPECT().GetAvailability(gomock.Any(), testDate).Return(gridView(), nil)
				for _, id := range ids {
					f.locks.EXPECT().Acquire(gomock.Any(), id, u1.HolderID()).Return(true, nil)
					f.locks.EXPECT().RemainingTTL(gomock.Any(), id).Return(20*time.Minute, nil)
				}
			},
			expectedLocked: []bool{true, true},
			expectedReason: []string{"", ""},
		},
		{
			name:   "booked, held and off-grid slots are reported, not dropped",
			starts: []string{"09:00", "14:00", "23:00"},
			setupMock: func(f *fixture, ids []slot.Identity) {
				f.availability.EXPECT().GetAvailability(gomock.Any(), testDate).Return(gridView("09:00"), nil)
				f.locks.EXPECT().Acquire(gomock.Any(), ids[1], u1.HolderID()).Return(false, nil)
			},
			expectedLocked: []bool{false, false, false},
			expectedReason: []string{commands.ReasonBooked, commands.ReasonHeld, commands.ReasonUnbookable},
		},
		{
			name:   "lock store failure aborts and rolls back earlier locks",
			starts: []string{"14:00", "15:00"},
			setupMock: func(f *fixture, ids []slot.Identity) {
				f.availability.EXPECT().GetAvailability(gomock.Any(), testDate).Return(gridView(), nil)
				f.locks.EXPECT().Acquire(gomock.Any(), ids[0], u1.HolderID()).Return(true, nil)
				f.locks.EXPECT().RemainingTTL(gomock.Any(), ids[0]).Return(20*time.Minute, nil)
				f.locks.EXPECT().Acquire(gomock.Any(), ids[1], u1.HolderID()).
					Return(false, errs.NewStoreUnavailable("redis", "acquire", context.DeadlineExceeded))
				f.locks.EXPECT().ReleaseOwned(gomock.Any(), ids[0], u1.HolderID()).Return(true, nil)
			},
			expectedError: errs.ErrStoreUnavailable,
		},
		{
			name:          "duplicate slot in one cart",
			starts:        []string{"14:00", "14:00"},
			setupMock:     func(f *fixture, ids []slot.Identity) {},
			expectedError: errs.ErrValidation,
		},
		{
			name:          "empty cart",
			starts:        nil,
			setupMock:     func(f *fixture, ids []slot.Identity) {},
			expectedError: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ids := make([]slot.Identity, len(tc.starts))
			for i, s := range tc.starts {
				ids[i] = slotAt(t, s)
			}
			tc.setupMock(f, ids)

			outcomes, err := f.reservations(t).TryReserve(ctx, u1, ids)

			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "got %v", err)
				assert.Nil(t, outcomes)
				return
			}
			require.NoError(t, err)
			require.Len(t, outcomes, len(ids))
			for i, o := range outcomes {
				assert.Equal(t, ids[i], o.Slot)
				assert.Equal(t, tc.expectedLocked[i], o.Locked, "slot %d", i)
				assert.Equal(t, tc.expectedReason[i], o.Reason, "slot %d", i)
				if o.Locked {
					require.NotNil(t, o.ExpiresAt)
					assert.Equal(t, f.clock.Now().Add(20*time.Minute), *o.ExpiresAt)
				}
			}
		})
	}
}

func TestTryReserve_PastDateIsRejected(t *testing.T) {
	f := newFixture(t)
	f.clock.Set(time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC))

	_, err := f.reservations(t).TryReserve(context.Background(), u1, []slot.Identity{slotAt(t, "14:00")})

	assert.True(t, errors.Is(err, errs.ErrValidation))
}

// Two customers race for courtA 2025-06-01 14:00 against a real lock store.
func TestTryReserve_SecondCustomerSeesHeld(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.availability.EXPECT().GetAvailability(gomock.Any(), testDate).Return(gridView(), nil).Times(3)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cfg := config.NewTestConfig()
	store := lockstore.NewRedisStore(client, cfg.Lock, cfg.Redis)

	cmds, err := commands.NewReservationUseCase(f.uow, store, f.availability, f.bookingQueries, f.metrics, f.clock, cfg)
	require.NoError(t, err)
	id := slotAt(t, "14:00")

	first, err := cmds.TryReserve(ctx, u1, []slot.Identity{id})
	require.NoError(t, err)
	assert.True(t, first[0].Locked)

	second, err := cmds.TryReserve(ctx, u2, []slot.Identity{id})
	require.NoError(t, err)
	assert.False(t, second[0].Locked)
	assert.Equal(t, commands.ReasonHeld, second[0].Reason)

	mr.FastForward(cfg.Lock.TTL + time.Second)

	third, err := cmds.TryReserve(ctx, u2, []slot.Identity{id})
	require.NoError(t, err)
	assert.True(t, third[0].Locked)
}

func TestReleaseSlot(t *testing.T) {
	f := newFixture(t)
	id := slotAt(t, "14:00")
	f.locks.EXPECT().ReleaseOwned(gomock.Any(), id, u1.HolderID()).Return(false, nil)

	err := f.reservations(t).ReleaseSlot(context.Background(), u1, id)

	assert.NoError(t, err)
}

func TestAbandonCart(t *testing.T) {
	f := newFixture(t)
	f.locks.EXPECT().ReleaseAllFor(gomock.Any(), u1.HolderID()).Return(3, nil)

	n, err := f.reservations(t).AbandonCart(context.Background(), u1)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestForceRelease(t *testing.T) {
	t.Run("releases whoever holds the slot", func(t *testing.T) {
		f := newFixture(t)
		id := slotAt(t, "14:00")
		f.locks.EXPECT().Release(gomock.Any(), id).Return(nil)

		assert.NoError(t, f.reservations(t).ForceRelease(context.Background(), id))
	})

	t.Run("invalid slot", func(t *testing.T) {
		f := newFixture(t)

		err := f.reservations(t).ForceRelease(context.Background(), slot.Identity{})

		assert.True(t, errors.Is(err, errs.ErrValidation))
	})
}
