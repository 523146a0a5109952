package queries

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

// ScheduleReader loads the inputs of one day's availability grid. All calls
// within one resolution share db so they observe a single snapshot.
type ScheduleReader interface {
	// ClosedDate returns nil when the venue is open on date.
	ClosedDate(ctx context.Context, db sqlc.DBTX, date slot.Date) (*court.ClosedDate, error)
	ActiveCourts(ctx context.Context, db sqlc.DBTX) ([]court.Court, error)
	OperatingHours(ctx context.Context, db sqlc.DBTX, weekday time.Weekday) (map[uuid.UUID]court.OperatingHours, error)
	// PricingRules groups active rules by court, highest priority first.
	PricingRules(ctx context.Context, db sqlc.DBTX, weekday time.Weekday) (map[uuid.UUID][]court.PricingRule, error)
	OccupiedSlots(ctx context.Context, db sqlc.DBTX, date slot.Date) ([]slot.Identity, error)
}

type AvailabilityQueries interface {
	// GetAvailability ignores locks; it reflects durable bookings only.
	GetAvailability(ctx context.Context, date slot.Date) (*AvailabilityView, error)
	// GetAvailabilityFor additionally marks slots currently held, telling the
	// holder's own holds apart from everyone else's.
	GetAvailabilityFor(ctx context.Context, date slot.Date, holder string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow         shared.UnitOfWork
	reader      ScheduleReader
	locks       shared.LockStore
	granularity time.Duration
}

func NewAvailabilityQueries(uow shared.UnitOfWork, reader ScheduleReader, locks shared.LockStore, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:         uow,
		reader:      reader,
		locks:       locks,
		granularity: cfg.Booking.SlotGranularity,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, date slot.Date) (*AvailabilityView, error) {
	if date.IsZero() {
		return nil, errs.NewValidation("date", "date is required")
	}

	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.resolve(ctx, db, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) resolve(ctx context.Context, db sqlc.DBTX, date slot.Date) (*AvailabilityView, error) {
	courts, err := q.reader.ActiveCourts(ctx, db)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{Date: date, Courts: make([]CourtAvailability, 0, len(courts))}

	closed, err := q.reader.ClosedDate(ctx, db, date)
	if err != nil {
		return nil, err
	}
	if closed != nil {
		for _, c := range courts {
			view.Courts = append(view.Courts, CourtAvailability{
				CourtID:      c.ID,
				CourtName:    c.Name,
				Closed:       true,
				ClosedReason: closed.Reason,
				Slots:        []SlotView{},
			})
		}
		return view, nil
	}

	weekday := date.Weekday()
	hours, err := q.reader.OperatingHours(ctx, db, weekday)
	if err != nil {
		return nil, err
	}
	rules, err := q.reader.PricingRules(ctx, db, weekday)
	if err != nil {
		return nil, err
	}
	occupied, err := q.reader.OccupiedSlots(ctx, db, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(occupied))
	for _, id := range occupied {
		booked[id.Key()] = struct{}{}
	}

	stepMin := int(q.granularity / time.Minute)
	for _, c := range courts {
		ca := CourtAvailability{CourtID: c.ID, CourtName: c.Name, Slots: []SlotView{}}

		h, ok := hours[c.ID]
		if !ok || h.Closed {
			ca.Closed = true
			view.Courts = append(view.Courts, ca)
			continue
		}

		grid, err := h.Grid(q.granularity)
		if err != nil {
			return nil, err
		}

		book := court.NewPriceBook(rules[c.ID])
		for _, start := range grid {
			sv := SlotView{
				Start:  start,
				End:    start.Add(stepMin),
				Status: SlotAvailable,
			}
			sv.Price, sv.Priced = book.PriceAt(weekday, start)
			if _, taken := booked[slot.Identity{CourtID: c.ID, Date: date, Start: start}.Key()]; taken {
				sv.Status = SlotBooked
			}
			ca.Slots = append(ca.Slots, sv)
		}
		view.Courts = append(view.Courts, ca)
	}

	return view, nil
}

func (q *availabilityQueriesImpl) GetAvailabilityFor(ctx context.Context, date slot.Date, holder string) (*AvailabilityView, error) {
	view, err := q.GetAvailability(ctx, date)
	if err != nil {
		return nil, err
	}

	var ids []slot.Identity
	for _, c := range view.Courts {
		for _, s := range c.Slots {
			if s.Status == SlotAvailable {
				ids = append(ids, slot.Identity{CourtID: c.CourtID, Date: date, Start: s.Start})
			}
		}
	}
	if len(ids) == 0 {
		return view, nil
	}

	holders, err := q.locks.Holders(ctx, ids)
	if err != nil {
		// Display only; reservations re-check against the lock store.
		slog.WarnContext(ctx, "lock overlay unavailable, serving durable view", "date", date.String(), "error", err)
		return view, nil
	}

	for ci := range view.Courts {
		c := &view.Courts[ci]
		for si := range c.Slots {
			s := &c.Slots[si]
			current, held := holders[slot.Identity{CourtID: c.CourtID, Date: date, Start: s.Start}.Key()]
			switch {
			case !held || s.Status != SlotAvailable:
			case current == holder:
				s.Lock = LockSelf
			default:
				s.Lock = LockOther
			}
		}
	}

	return view, nil
}
