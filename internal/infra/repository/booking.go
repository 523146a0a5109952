package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingItemParams) error
	CreateBookingParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParticipantParams) error
	FindActiveBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingItemParams) (sqlc.FindActiveBookingItemRow, error)
	ListActiveBookingItemsForSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingItemsForSlotsParams) ([]sqlc.ListActiveBookingItemsForSlotsRow, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingItemsByBookingIDs(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.ListBookingItemsByBookingIDsRow, error)
	ListBookingParticipantsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingParticipants, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	ReleaseBookingItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseBookingItemsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the booking with its items and participants. It must run in
// a transaction: a unique violation on any item leaves the booking half written.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, it := range b.Items() {
		if err := r.queries.CreateBookingItem(ctx, tx, converter.ItemToCreateParams(b.ID(), it)); err != nil {
			return infra.WrapRepoErr("failed to create booking item "+it.Slot().String(), err)
		}
	}

	for _, p := range b.Participants() {
		params, err := converter.ParticipantToCreateParams(b.ID(), p)
		if err != nil {
			return infra.WrapRepoErr("invalid participant", err)
		}
		if err := r.queries.CreateBookingParticipant(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create booking participant", err)
		}
	}

	return nil
}

func (r *BookingRepository) FindActiveItem(ctx context.Context, tx sqlc.DBTX, id slot.Identity) (*booking.Item, error) {
	params := sqlc.FindActiveBookingItemParams{
		CourtID:   id.CourtID,
		Date:      converter.SlotDateToPgtype(id.Date),
		StartTime: id.Start.String(),
	}

	row, err := r.queries.FindActiveBookingItem(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active booking item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active booking item", err)
	}

	item, err := converter.ItemFromColumns(row.CourtID, row.Date, row.StartTime, row.EndTime, row.PriceMinor, row.StaffID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking item row", err)
	}
	return &item, nil
}

func (r *BookingRepository) FindActiveItems(ctx context.Context, tx sqlc.DBTX, ids []slot.Identity) ([]booking.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.queries.ListActiveBookingItemsForSlots(ctx, tx, converter.SlotsToParams(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active booking items", err)
	}

	items := make([]booking.Item, 0, len(rows))
	for _, row := range rows {
		item, err := converter.ItemFromColumns(row.CourtID, row.Date, row.StartTime, row.EndTime, row.PriceMinor, row.StaffID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking item row", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	itemRows, err := r.queries.ListBookingItemsByBookingIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}
	items := make([]booking.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := converter.ItemFromColumns(ir.CourtID, ir.Date, ir.StartTime, ir.EndTime, ir.PriceMinor, ir.StaffID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking item row", err)
		}
		items = append(items, item)
	}

	participantRows, err := r.queries.ListBookingParticipantsByBookingID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking participants", err)
	}
	participants := make([]booking.Participant, len(participantRows))
	for i, pr := range participantRows {
		participants[i] = converter.ParticipantFromRow(pr)
	}

	b, err := converter.BookingFromRow(row, items, participants)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

// UpdateStatus persists b's current status if the stored one is still from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error {
	params := sqlc.UpdateBookingStatusParams{
		ToStatus:   b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		FromStatus: from.String(),
	}

	n, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found in status "+from.String(), nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ReleaseItems(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int64, error) {
	params := sqlc.ReleaseBookingItemsParams{
		BookingID:  bookingID,
		ReleasedAt: pgconv.TimeToPgtype(at),
	}

	n, err := r.queries.ReleaseBookingItems(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release booking items", err)
	}
	return n, nil
}
