//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/ptr"
	repositorymock "court-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

var (
	courtID = uuid.New()
	day     = slot.MustParseDate("2025-06-01")
)

func slotAt(start string) slot.Identity {
	return slot.Identity{CourtID: courtID, Date: day, Start: slot.MustParseClockTime(start)}
}

func newDomainBooking(t *testing.T, starts ...string) *booking.Booking {
	t.Helper()

	items := make([]booking.Item, len(starts))
	for i, s := range starts {
		id := slotAt(s)
		it, err := booking.NewItem(id, id.Start.Add(60), booking.MustMoney(50000), nil)
		require.NoError(t, err)
		items[i] = it
	}
	customer, err := booking.NewCustomer("Somchai", "0812345678", "")
	require.NoError(t, err)
	p, err := booking.NewParticipant("Somchai", "", "badminton", ptr.Of(32), true)
	require.NoError(t, err)
	number, err := booking.ParseNumber("BK202506010001")
	require.NoError(t, err)

	b, err := booking.NewBooking(number, uuid.New(), customer, []booking.Participant{p}, items, "", time.Now())
	require.NoError(t, err)
	return b
}

// =============================================================================
// Create Tests
// =============================================================================

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		setupMock        func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError    bool
		expectKind       infra.RepositoryErrorKind
		expectConstraint string
	}{
		{
			name: "success: booking, items and participants written",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateBooking(ctx, tx, converter.BookingToCreateParams(b)).Return(nil),
					mock.EXPECT().CreateBookingItem(ctx, tx, converter.ItemToCreateParams(b.ID(), b.Items()[0])).Return(nil),
					mock.EXPECT().CreateBookingItem(ctx, tx, converter.ItemToCreateParams(b.ID(), b.Items()[1])).Return(nil),
					mock.EXPECT().CreateBookingParticipant(ctx, tx, gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "error: header insert fails, nothing else is written",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: slot already taken",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintActiveSlot}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingItem(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError:    true,
			expectKind:       infra.KindDuplicateKey,
			expectConstraint: infra.ConstraintActiveSlot,
		},
		{
			name: "error: booking number collision",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintBookingNumber}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError:    true,
			expectKind:       infra.KindDuplicateKey,
			expectConstraint: infra.ConstraintBookingNumber,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := newDomainBooking(t, "18:00", "19:00")

			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, tc.expectConstraint, infra.ConstraintOf(actualError))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Active item lookups
// =============================================================================

func TestRepository_FindActiveItems(t *testing.T) {
	ctx := context.Background()

	t.Run("no slots skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		items, err := repo.FindActiveItems(ctx, &mockDBTX{}, nil)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("maps rows back to items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)
		ids := []slot.Identity{slotAt("18:00"), slotAt("19:00")}

		mockQueries.EXPECT().ListActiveBookingItemsForSlots(ctx, mockDB, converter.SlotsToParams(ids)).
			Return([]sqlc.ListActiveBookingItemsForSlotsRow{{
				ID:         uuid.New(),
				BookingID:  uuid.New(),
				CourtID:    courtID,
				Date:       converter.SlotDateToPgtype(day),
				StartTime:  "19:00",
				EndTime:    "20:00",
				PriceMinor: 50000,
			}}, nil)

		items, err := repo.FindActiveItems(ctx, mockDB, ids)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, slotAt("19:00").Key(), items[0].Slot().Key())
		assert.Equal(t, int64(50000), items[0].Price().Minor())
		assert.Nil(t, items[0].StaffID())
	})

	t.Run("corrupt stored time is a conversion error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ListActiveBookingItemsForSlots(ctx, mockDB, gomock.Any()).
			Return([]sqlc.ListActiveBookingItemsForSlotsRow{{CourtID: courtID, Date: converter.SlotDateToPgtype(day), StartTime: "7pm", EndTime: "20:00"}}, nil)

		_, err := repo.FindActiveItems(ctx, mockDB, []slot.Identity{slotAt("19:00")})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRepository_FindActiveItem(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	mockQueries.EXPECT().FindActiveBookingItem(ctx, mockDB, gomock.Any()).Return(sqlc.FindActiveBookingItemRow{}, pgx.ErrNoRows)

	item, err := repo.FindActiveItem(ctx, mockDB, slotAt("18:00"))

	assert.Nil(t, item)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Status transitions
// =============================================================================

func TestRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	bookingRow := sqlc.Bookings{
		ID:            id,
		BookingNumber: "BK202506010042",
		CustomerID:    uuid.New(),
		CustomerName:  "Somchai",
		CustomerPhone: "0812345678",
		Status:        "CONFIRMED",
		TotalMinor:    100000,
		CreatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rehydrates booking with items and participants",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByIDForUpdate(ctx, tx, id).Return(bookingRow, nil)
				mock.EXPECT().ListBookingItemsByBookingIDs(ctx, tx, []uuid.UUID{id}).Return([]sqlc.ListBookingItemsByBookingIDsRow{
					{BookingID: id, CourtID: courtID, Date: converter.SlotDateToPgtype(day), StartTime: "18:00", EndTime: "19:00", PriceMinor: 50000},
					{BookingID: id, CourtID: courtID, Date: converter.SlotDateToPgtype(day), StartTime: "23:00", EndTime: "24:00", PriceMinor: 50000},
				}, nil)
				mock.EXPECT().ListBookingParticipantsByBookingID(ctx, tx, id).Return([]sqlc.BookingParticipants{
					{BookingID: id, Name: "Somchai", IsBooker: true, Age: pgtype.Int2{Int16: 32, Valid: true}},
				}, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByIDForUpdate(ctx, tx, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: lock query fails",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByIDForUpdate(ctx, tx, id).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				bad := bookingRow
				bad.Status = "ARCHIVED"
				mock.EXPECT().GetBookingByIDForUpdate(ctx, tx, id).Return(bad, nil)
				mock.EXPECT().ListBookingItemsByBookingIDs(ctx, tx, gomock.Any()).Return(nil, nil)
				mock.EXPECT().ListBookingParticipantsByBookingID(ctx, tx, id).Return(nil, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			b, actualError := repo.FindForUpdate(ctx, mockDB, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, id, b.ID())
			assert.Equal(t, booking.StatusConfirmed, b.Status())
			assert.Equal(t, "BK202506010042", b.Number().String())
			assert.Len(t, b.Items(), 2)
			require.Len(t, b.Participants(), 1)
			assert.Equal(t, 32, *b.Participants()[0].Age())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "stale status matches no row", affected: 0, expectKind: infra.KindNotFound},
		{name: "database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := newDomainBooking(t, "18:00")
			require.NoError(t, b.Confirm(time.Now()))

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "CONFIRMED", arg.ToStatus)
					assert.Equal(t, "PENDING", arg.FromStatus)
					assert.Equal(t, b.ID(), arg.ID)
					return tc.affected, tc.queryErr
				})

			err := repo.UpdateStatus(ctx, mockDB, b, booking.StatusPending)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestRepository_ReleaseItems(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)
	id := uuid.New()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().ReleaseBookingItems(ctx, mockDB, sqlc.ReleaseBookingItemsParams{
		BookingID:  id,
		ReleasedAt: pgtype.Timestamptz{Time: at, Valid: true},
	}).Return(int64(2), nil)

	n, err := repo.ReleaseItems(ctx, mockDB, id, at)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// =============================================================================
// Test Helper
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
