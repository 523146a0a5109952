package readstore

import (
	"context"

	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerParams) ([]sqlc.Bookings, error)
	ListBookingItemsByBookingIDs(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.ListBookingItemsByBookingIDsRow, error)
	ListBookingParticipantsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingParticipants, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view := rowToBookingView(row)
	if err := r.attachItems(ctx, []*queries.BookingView{view}); err != nil {
		return nil, err
	}

	participants, err := r.queries.ListBookingParticipantsByBookingID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking participants", err)
	}
	view.Participants = make([]queries.ParticipantView, len(participants))
	for i, p := range participants {
		view.Participants[i] = queries.ParticipantView{
			Name:      p.Name,
			Phone:     p.Phone,
			SportType: p.SportType,
			Age:       pgconv.IntPtrFromInt2(p.Age),
			IsBooker:  p.IsBooker,
		}
	}

	return view, nil
}

// ListByCustomer returns the newest bookings first, items included and
// participants omitted.
func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, sqlc.ListBookingsByCustomerParams{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}

	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = rowToBookingView(row)
	}
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) attachItems(ctx context.Context, views []*queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.BookingView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.queries.ListBookingItemsByBookingIDs(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking items", err)
	}

	for _, row := range rows {
		v, ok := byID[row.BookingID]
		if !ok {
			continue
		}
		v.Items = append(v.Items, queries.BookingItemView{
			CourtID:    row.CourtID,
			CourtName:  row.CourtName,
			Date:       row.Date.Time.Format("2006-01-02"),
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
			PriceMinor: row.PriceMinor,
			StaffID:    pgconv.UUIDPtrFromPgtype(row.StaffID),
			ReleasedAt: pgconv.TimePtrFromPgtype(row.ReleasedAt),
		})
	}
	return nil
}

func rowToBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		BookingNumber: row.BookingNumber,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		CustomerEmail: row.CustomerEmail,
		Status:        row.Status,
		TotalMinor:    row.TotalMinor,
		Note:          row.Note,
		Items:         []queries.BookingItemView{},
		Participants:  []queries.ParticipantView{},
		ConfirmedAt:   pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
