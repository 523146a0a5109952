package commands

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReservationCommands interface {
	// TryReserve locks each requested slot for the actor and reports a
	// per-slot outcome. A lock store failure aborts the whole call.
	TryReserve(ctx context.Context, actor shared.Actor, ids []slot.Identity) ([]ReserveOutcome, error)
	// ReleaseSlot removes one slot from the actor's cart. Releasing a slot the
	// actor does not hold is a no-op.
	ReleaseSlot(ctx context.Context, actor shared.Actor, id slot.Identity) error
	AbandonCart(ctx context.Context, actor shared.Actor) (int, error)
	SubmitCheckout(ctx context.Context, actor shared.Actor, in CheckoutInput, idempotencyKey uuid.UUID) (*CheckoutResult, error)
	// ForceRelease drops a lock whoever holds it. Staff only.
	ForceRelease(ctx context.Context, id slot.Identity) error
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	locks        shared.LockStore
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
	metrics      *metrics.Metrics
	clock        clock.Clock

	loc             *time.Location
	maxCartItems    int
	checkoutTimeout time.Duration
	idempotencyTTL  time.Duration
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	locks shared.LockStore,
	availability queries.AvailabilityQueries,
	bookings queries.BookingQueries,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.Config,
) (ReservationCommands, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return &reservationUseCaseImpl{
		uow:             uow,
		locks:           locks,
		availability:    availability,
		bookings:        bookings,
		metrics:         m,
		clock:           clk,
		loc:             loc,
		maxCartItems:    cfg.Booking.MaxCartItems,
		checkoutTimeout: cfg.Booking.CheckoutTimeout,
		idempotencyTTL:  cfg.Booking.IdempotencyTTL,
	}, nil
}

func (r *reservationUseCaseImpl) TryReserve(ctx context.Context, actor shared.Actor, ids []slot.Identity) ([]ReserveOutcome, error) {
	if err := r.validateCart(ids); err != nil {
		return nil, err
	}
	holder := actor.HolderID()

	grids := make(map[slot.Date]*queries.AvailabilityView)
	outcomes := make([]ReserveOutcome, 0, len(ids))
	var acquired []slot.Identity

	for _, id := range ids {
		view, ok := grids[id.Date]
		if !ok {
			var err error
			view, err = r.availability.GetAvailability(ctx, id.Date)
			if err != nil {
				r.releaseAcquired(ctx, holder, acquired)
				return nil, durableStoreErr("availability", err)
			}
			grids[id.Date] = view
		}

		_, sv, onGrid := view.Slot(id)
		switch {
		case !onGrid || !sv.Priced:
			outcomes = append(outcomes, ReserveOutcome{Slot: id, Reason: ReasonUnbookable})
			continue
		case sv.Status == queries.SlotBooked:
			outcomes = append(outcomes, ReserveOutcome{Slot: id, Reason: ReasonBooked})
			continue
		}

		locked, err := r.locks.Acquire(ctx, id, holder)
		if err != nil {
			r.releaseAcquired(ctx, holder, acquired)
			return nil, err
		}
		if !locked {
			outcomes = append(outcomes, ReserveOutcome{Slot: id, Reason: ReasonHeld})
			continue
		}
		acquired = append(acquired, id)

		outcome := ReserveOutcome{Slot: id, Locked: true}
		ttl, err := r.locks.RemainingTTL(ctx, id)
		if err != nil {
			slog.WarnContext(ctx, "failed to read lock expiry", "slot", id.String(), "error", err)
		} else if ttl > 0 {
			expiresAt := r.clock.Now().Add(ttl)
			outcome.ExpiresAt = &expiresAt
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// releaseAcquired undoes a partially applied TryReserve. Own locks that were
// already held before the call are released too.
func (r *reservationUseCaseImpl) releaseAcquired(ctx context.Context, holder string, ids []slot.Identity) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range ids {
		if _, err := r.locks.ReleaseOwned(ctx, id, holder); err != nil {
			slog.WarnContext(ctx, "failed to roll back slot lock; it will expire", "slot", id.String(), "error", err)
		}
	}
}

func (r *reservationUseCaseImpl) ReleaseSlot(ctx context.Context, actor shared.Actor, id slot.Identity) error {
	if err := id.Validate(); err != nil {
		return errs.NewValidation("slot", err.Error())
	}
	_, err := r.locks.ReleaseOwned(ctx, id, actor.HolderID())
	return err
}

func (r *reservationUseCaseImpl) AbandonCart(ctx context.Context, actor shared.Actor) (int, error) {
	return r.locks.ReleaseAllFor(ctx, actor.HolderID())
}

func (r *reservationUseCaseImpl) ForceRelease(ctx context.Context, id slot.Identity) error {
	if err := id.Validate(); err != nil {
		return errs.NewValidation("slot", err.Error())
	}
	return r.locks.Release(ctx, id)
}

func (r *reservationUseCaseImpl) validateCart(ids []slot.Identity) error {
	if len(ids) == 0 {
		return errs.NewValidation("items", "at least one slot is required")
	}
	if len(ids) > r.maxCartItems {
		return errs.NewValidation("items", "too many slots in one cart")
	}

	today := slot.DateOf(r.clock.Now().In(r.loc))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValidation("items", err.Error())
		}
		if id.Date.Before(today) {
			return errs.NewValidation("items", "date "+id.Date.String()+" is in the past")
		}
		key := id.Key()
		if _, dup := seen[key]; dup {
			return errs.NewValidation("items", "slot "+key+" appears more than once")
		}
		seen[key] = struct{}{}
	}
	return nil
}
