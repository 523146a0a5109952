package readstore

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/readstore/availability.go -package=readstoremock

type AvailabilityReadQueries interface {
	GetSpecialClosedDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (sqlc.SpecialClosedDates, error)
	ListActiveCourts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Courts, error)
	ListOperatingHoursByDay(ctx context.Context, db sqlc.DBTX, dayOfWeek int16) ([]sqlc.OperatingHours, error)
	ListActivePricingRulesByDay(ctx context.Context, db sqlc.DBTX, dayOfWeek int16) ([]sqlc.PricingRules, error)
	ListOccupiedSlotsByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.ListOccupiedSlotsByDateRow, error)
}

// AvailabilityReadStore serves the resolver's schedule reads. Callers pass
// the db so one read-only transaction covers a whole resolution.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
	}
}

func (r *AvailabilityReadStore) ClosedDate(ctx context.Context, db sqlc.DBTX, date slot.Date) (*court.ClosedDate, error) {
	row, err := r.queries.GetSpecialClosedDate(ctx, db, converter.SlotDateToPgtype(date))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get special closed date", err)
	}
	return &court.ClosedDate{Date: date, Reason: row.Reason}, nil
}

func (r *AvailabilityReadStore) ActiveCourts(ctx context.Context, db sqlc.DBTX) ([]court.Court, error) {
	rows, err := r.queries.ListActiveCourts(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active courts", err)
	}

	courts := make([]court.Court, len(rows))
	for i, row := range rows {
		courts[i] = court.Court{ID: row.ID, Name: row.Name, SortOrder: int(row.SortOrder)}
	}
	return courts, nil
}

func (r *AvailabilityReadStore) OperatingHours(ctx context.Context, db sqlc.DBTX, weekday time.Weekday) (map[uuid.UUID]court.OperatingHours, error) {
	rows, err := r.queries.ListOperatingHoursByDay(ctx, db, int16(weekday))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list operating hours", err)
	}

	hours := make(map[uuid.UUID]court.OperatingHours, len(rows))
	for _, row := range rows {
		open, err := slot.ParseClockTime(row.OpenTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored open time", errs.Wrapf(err, "court %s", row.CourtID))
		}
		closeAt, err := slot.ParseClockTime(row.CloseTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored close time", errs.Wrapf(err, "court %s", row.CourtID))
		}
		h := court.OperatingHours{Weekday: weekday, Open: open, Close: closeAt, Closed: row.IsClosed}
		if err := h.Validate(); err != nil {
			return nil, infra.WrapRepoErr("invalid stored operating hours", errs.Wrapf(err, "court %s", row.CourtID))
		}
		hours[row.CourtID] = h
	}
	return hours, nil
}

func (r *AvailabilityReadStore) PricingRules(ctx context.Context, db sqlc.DBTX, weekday time.Weekday) (map[uuid.UUID][]court.PricingRule, error) {
	rows, err := r.queries.ListActivePricingRulesByDay(ctx, db, int16(weekday))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}

	rules := make(map[uuid.UUID][]court.PricingRule)
	for _, row := range rows {
		rule, err := pricingRuleFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored pricing rule", errs.Wrapf(err, "rule %s", row.ID))
		}
		rules[row.CourtID] = append(rules[row.CourtID], rule)
	}
	return rules, nil
}

func pricingRuleFromRow(row sqlc.PricingRules) (court.PricingRule, error) {
	start, err := slot.ParseClockTime(row.StartTime)
	if err != nil {
		return court.PricingRule{}, err
	}
	end, err := slot.ParseClockTime(row.EndTime)
	if err != nil {
		return court.PricingRule{}, err
	}
	price, err := booking.NewMoney(row.PriceMinor)
	if err != nil {
		return court.PricingRule{}, err
	}
	days := make([]time.Weekday, len(row.DaysOfWeek))
	for i, d := range row.DaysOfWeek {
		days[i] = time.Weekday(d)
	}
	return court.PricingRule{
		Name:     row.Name,
		Days:     days,
		Start:    start,
		End:      end,
		Price:    price,
		Priority: int(row.Priority),
	}, nil
}

func (r *AvailabilityReadStore) OccupiedSlots(ctx context.Context, db sqlc.DBTX, date slot.Date) ([]slot.Identity, error) {
	rows, err := r.queries.ListOccupiedSlotsByDate(ctx, db, converter.SlotDateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}

	ids := make([]slot.Identity, 0, len(rows))
	for _, row := range rows {
		start, err := slot.ParseClockTime(row.StartTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored start time", err)
		}
		ids = append(ids, slot.Identity{CourtID: row.CourtID, Date: date, Start: start})
	}
	return ids, nil
}
