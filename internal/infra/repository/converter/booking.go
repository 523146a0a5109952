package converter

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	customer := b.Customer()
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		BookingNumber: b.Number().String(),
		CustomerID:    b.CustomerID(),
		CustomerName:  customer.Name(),
		CustomerPhone: customer.Phone(),
		CustomerEmail: customer.Email(),
		Status:        b.Status().String(),
		TotalMinor:    b.Total().Minor(),
		Note:          b.Note(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func ItemToCreateParams(bookingID uuid.UUID, it booking.Item) sqlc.CreateBookingItemParams {
	id := it.Slot()
	return sqlc.CreateBookingItemParams{
		BookingID:  bookingID,
		CourtID:    id.CourtID,
		Date:       SlotDateToPgtype(id.Date),
		StartTime:  id.Start.String(),
		EndTime:    it.End().String(),
		PriceMinor: it.Price().Minor(),
		StaffID:    pgconv.UUIDPtrToPgtype(it.StaffID()),
	}
}

func ParticipantToCreateParams(bookingID uuid.UUID, p booking.Participant) (sqlc.CreateBookingParticipantParams, error) {
	age, err := pgconv.IntPtrToInt2(p.Age())
	if err != nil {
		return sqlc.CreateBookingParticipantParams{}, err
	}
	return sqlc.CreateBookingParticipantParams{
		BookingID: bookingID,
		Name:      p.Name(),
		Phone:     p.Phone(),
		SportType: p.SportType(),
		Age:       age,
		IsBooker:  p.IsBooker(),
	}, nil
}

func SlotDateToPgtype(d slot.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func SlotDateFromPgtype(pd pgtype.Date) slot.Date {
	return slot.DateOf(pd.Time)
}

// SlotsToParams splits identities into the parallel arrays unnest expects.
func SlotsToParams(ids []slot.Identity) sqlc.ListActiveBookingItemsForSlotsParams {
	params := sqlc.ListActiveBookingItemsForSlotsParams{
		CourtIds:   make([]uuid.UUID, len(ids)),
		Dates:      make([]pgtype.Date, len(ids)),
		StartTimes: make([]string, len(ids)),
	}
	for i, id := range ids {
		params.CourtIds[i] = id.CourtID
		params.Dates[i] = SlotDateToPgtype(id.Date)
		params.StartTimes[i] = id.Start.String()
	}
	return params
}

func ItemFromColumns(courtID uuid.UUID, date pgtype.Date, start, end string, priceMinor int64, staffID pgtype.UUID) (booking.Item, error) {
	startTime, err := slot.ParseClockTime(start)
	if err != nil {
		return booking.Item{}, errs.Wrapf(err, "stored start time %q", start)
	}
	endTime, err := slot.ParseClockTime(end)
	if err != nil {
		return booking.Item{}, errs.Wrapf(err, "stored end time %q", end)
	}
	price, err := booking.NewMoney(priceMinor)
	if err != nil {
		return booking.Item{}, err
	}
	id := slot.Identity{CourtID: courtID, Date: SlotDateFromPgtype(date), Start: startTime}
	return booking.NewItem(id, endTime, price, pgconv.UUIDPtrFromPgtype(staffID))
}

func ParticipantFromRow(row sqlc.BookingParticipants) booking.Participant {
	return booking.RehydrateParticipant(row.Name, row.Phone, row.SportType, pgconv.IntPtrFromInt2(row.Age), row.IsBooker)
}

func BookingFromRow(row sqlc.Bookings, items []booking.Item, participants []booking.Participant) (*booking.Booking, error) {
	number, err := booking.ParseNumber(row.BookingNumber)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking number %q", row.BookingNumber)
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(row.TotalMinor)
	if err != nil {
		return nil, err
	}
	return booking.Rehydrate(
		row.ID,
		number,
		row.CustomerID,
		booking.RehydrateCustomer(row.CustomerName, row.CustomerPhone, row.CustomerEmail),
		participants,
		items,
		status,
		total,
		row.Note,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
