package queries

import (
	"context"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

var ErrBookingNotFound = errs.New("booking not found")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID hides bookings the actor may not see behind ErrBookingNotFound.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check; used for idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*BookingView, error)
	HeldSlots(ctx context.Context, holder string) ([]*HeldSlotView, error)
	InspectLock(ctx context.Context, id slot.Identity) (*LockView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	locks shared.LockStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, locks shared.LockStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		locks: locks,
		clock: clock,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.CustomerID != actor.ID && !actor.IsStaff() {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*BookingView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return q.store.ListByCustomer(ctx, customerID, int32(limit))
}

func (q *bookingQueriesImpl) HeldSlots(ctx context.Context, holder string) ([]*HeldSlotView, error) {
	locks, err := q.locks.HeldBy(ctx, holder)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]*HeldSlotView, 0, len(locks))
	for _, l := range locks {
		remaining := l.Remaining(now)
		if remaining <= 0 {
			continue
		}
		views = append(views, &HeldSlotView{
			CourtID:   l.Slot.CourtID,
			Date:      l.Slot.Date.String(),
			StartTime: l.Slot.Start.String(),
			ExpiresAt: l.ExpiresAt,
			Remaining: remaining.Truncate(time.Second),
		})
	}
	return views, nil
}

func (q *bookingQueriesImpl) InspectLock(ctx context.Context, id slot.Identity) (*LockView, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValidation("slot", err.Error())
	}

	holder, held, err := q.locks.CurrentHolder(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &LockView{Slot: id, Held: held, HolderID: holder}
	if !held {
		return view, nil
	}

	remaining, err := q.locks.RemainingTTL(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Remaining = remaining
	return view, nil
}
