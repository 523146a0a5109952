package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	checkoutEndpoint  = "POST /api/checkout"
	maxNumberAttempts = 3

	// Added to the checkout timeout to form the processing lease.
	processingLeaseGrace = 30 * time.Second
)

func (r *reservationUseCaseImpl) SubmitCheckout(
	ctx context.Context,
	actor shared.Actor,
	in CheckoutInput,
	idempotencyKey uuid.UUID,
) (*CheckoutResult, error) {
	result, err := r.submitCheckout(ctx, actor, in, idempotencyKey)

	outcome := "success"
	switch {
	case errors.Is(err, errs.ErrConflict):
		outcome = "conflict"
	case err != nil:
		outcome = "fail"
	case result.Replayed:
		outcome = "replayed"
	}
	r.metrics.CheckoutTotal.WithLabelValues(outcome).Inc()

	return result, err
}

func (r *reservationUseCaseImpl) submitCheckout(
	ctx context.Context,
	actor shared.Actor,
	in CheckoutInput,
	idempotencyKey uuid.UUID,
) (*CheckoutResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.Mark(errs.NewValidation("Idempotency-Key", "header is required"), ErrMissingIdemKey)
	}
	if r.checkoutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkoutTimeout)
		defer cancel()
	}

	if err := r.validateCart(in.Items); err != nil {
		return nil, err
	}
	customer, participants, err := toDomainCustomer(in)
	if err != nil {
		return nil, err
	}

	hash := requestHash(in)
	replayed, err := r.claimIdempotencyKey(ctx, actor.ID, idempotencyKey, hash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CheckoutResult{Booking: replayed, Replayed: true}, nil
	}

	committed := false
	defer func() {
		if !committed {
			r.abandonIdempotencyKey(ctx, actor.ID, idempotencyKey)
		}
	}()

	holder := actor.HolderID()
	if err := r.ensureLocks(ctx, holder, in.Items); err != nil {
		return nil, err
	}

	items, err := r.quote(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	number, err := booking.GenerateNumber(now.In(r.loc))
	if err != nil {
		return nil, err
	}
	b, err := booking.NewBooking(number, actor.ID, customer, participants, items, in.Note, now)
	if err != nil {
		return nil, errs.NewValidation("booking", err.Error())
	}

	if err := r.commit(ctx, b, actor.ID, idempotencyKey); err != nil {
		return nil, err
	}
	committed = true

	r.releaseAfterCommit(ctx, holder, b.Slots())

	view, err := r.bookings.GetByIDSystem(ctx, b.ID())
	if err != nil {
		return nil, durableStoreErr("read_booking", err)
	}
	return &CheckoutResult{Booking: view}, nil
}

// claimIdempotencyKey returns a non-nil view when the request was already
// completed and must be replayed.
func (r *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	userID, key uuid.UUID,
	hash string,
) (*queries.BookingView, error) {
	// A processing key only lives for the lease, so a crash between claim and
	// commit frees the key shortly. Completion moves it to the replay window.
	expiresAt := r.clock.Now().Add(r.processingLease())

	inserted := false
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, checkoutEndpoint, hash, expiresAt)
		inserted = ok
		return err
	})
	if err != nil {
		return nil, durableStoreErr("idempotency", err)
	}
	if inserted {
		return nil, nil
	}

	existing, err := r.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, durableStoreErr("idempotency", err)
		}
		// The stored key expired; take it over for this request.
		claimed := false
		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, hash, expiresAt)
			claimed = ok
			return err
		})
		if err != nil {
			return nil, durableStoreErr("idempotency", err)
		}
		if !claimed {
			return nil, ErrRequestInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != hash {
		return nil, ErrDuplicateRequest
	}
	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed idempotency key has no booking")
		}
		view, err := r.bookings.GetByIDSystem(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, durableStoreErr("read_booking", err)
		}
		return view, nil
	default:
		return nil, ErrRequestInProgress
	}
}

func (r *reservationUseCaseImpl) processingLease() time.Duration {
	return r.checkoutTimeout + processingLeaseGrace
}

// abandonIdempotencyKey frees the key after a failed attempt so the client
// can retry with the same key.
func (r *reservationUseCaseImpl) abandonIdempotencyKey(ctx context.Context, userID, key uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().DeleteProcessing(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", err)
	}
}

// ensureLocks checks that the actor still holds every cart slot, re-taking
// locks that expired in the meantime.
func (r *reservationUseCaseImpl) ensureLocks(ctx context.Context, holder string, ids []slot.Identity) error {
	var conflicts []errs.SlotConflict
	for _, id := range ids {
		current, held, err := r.locks.CurrentHolder(ctx, id)
		if err != nil {
			return err
		}
		if held {
			if current != holder {
				conflicts = append(conflicts, conflictOf(id, errs.ConflictReasonHeld))
			}
			continue
		}

		ok, err := r.locks.Acquire(ctx, id, holder)
		if err != nil {
			return err
		}
		if !ok {
			conflicts = append(conflicts, conflictOf(id, errs.ConflictReasonHeld))
		}
	}
	if len(conflicts) > 0 {
		return errs.NewConflict(conflicts, len(ids))
	}
	return nil
}

// quote prices every item from the server-side grid; client prices are never trusted.
func (r *reservationUseCaseImpl) quote(ctx context.Context, ids []slot.Identity) ([]booking.Item, error) {
	grids := make(map[slot.Date]*queries.AvailabilityView)
	items := make([]booking.Item, 0, len(ids))
	var conflicts []errs.SlotConflict

	for _, id := range ids {
		view, ok := grids[id.Date]
		if !ok {
			var err error
			view, err = r.availability.GetAvailability(ctx, id.Date)
			if err != nil {
				return nil, durableStoreErr("availability", err)
			}
			grids[id.Date] = view
		}

		_, sv, onGrid := view.Slot(id)
		if !onGrid {
			return nil, errs.NewValidation("items", "slot "+id.String()+" is not bookable")
		}
		if !sv.Priced {
			return nil, errs.NewValidation("items", "slot "+id.String()+" has no price")
		}
		if sv.Status == queries.SlotBooked {
			conflicts = append(conflicts, conflictOf(id, errs.ConflictReasonBooked))
			continue
		}

		item, err := booking.NewItem(id, sv.End, sv.Price, nil)
		if err != nil {
			return nil, errs.NewValidation("items", err.Error())
		}
		items = append(items, item)
	}

	if len(conflicts) > 0 {
		return nil, errs.NewConflict(conflicts, len(ids))
	}
	return items, nil
}

// commit writes the booking all-or-nothing. The partial unique index on
// booking_items is the final arbiter: a violation means another checkout
// won the race and is reported as a conflict.
func (r *reservationUseCaseImpl) commit(ctx context.Context, b *booking.Booking, userID, key uuid.UUID) error {
	for attempt := 1; ; attempt++ {
		err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			existing, err := tx.Bookings().FindActiveItems(ctx, tx.DB(), b.Slots())
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return conflictFromItems(existing, len(b.Items()))
			}

			if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
				return err
			}

			payload, err := json.Marshal(newBookingEvent(b, r.clock.Now()))
			if err != nil {
				return err
			}
			if err := tx.Notifications().CreateJob(ctx, tx.DB(), eventKind, TopicBookingCreated, payload, r.clock.Now()); err != nil {
				return err
			}

			return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), key, userID, idHash(b.ID()), b.ID(), r.clock.Now().Add(r.idempotencyTTL))
		})
		if err == nil {
			return nil
		}

		if infra.IsKind(err, infra.KindDuplicateKey) {
			switch infra.ConstraintOf(err) {
			case infra.ConstraintBookingNumber:
				if attempt < maxNumberAttempts {
					number, gerr := booking.GenerateNumber(r.clock.Now().In(r.loc))
					if gerr != nil {
						return gerr
					}
					slog.InfoContext(ctx, "booking number collision, regenerating", "attempt", attempt)
					b.Renumber(number)
					continue
				}
			case infra.ConstraintActiveSlot:
				return r.conflictAfterRace(ctx, b)
			}
		}
		return durableStoreErr("commit", err)
	}
}

// conflictAfterRace names the slots that were taken between revalidation and
// insert. The aborted transaction cannot be read from, so this is a fresh read.
func (r *reservationUseCaseImpl) conflictAfterRace(ctx context.Context, b *booking.Booking) error {
	var taken []booking.Item
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		taken, err = tx.Bookings().FindActiveItems(ctx, tx.DB(), b.Slots())
		return err
	})
	if err != nil || len(taken) == 0 {
		if err != nil {
			slog.WarnContext(ctx, "failed to identify conflicting slots", "error", err)
		}
		taken = b.Items()
	}
	return conflictFromItems(taken, len(b.Items()))
}

func (r *reservationUseCaseImpl) releaseAfterCommit(ctx context.Context, holder string, ids []slot.Identity) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range ids {
		if _, err := r.locks.ReleaseOwned(ctx, id, holder); err != nil {
			slog.WarnContext(ctx, "failed to release lock after checkout; it will expire", "slot", id.String(), "error", err)
		}
	}
}

func toDomainCustomer(in CheckoutInput) (booking.Customer, []booking.Participant, error) {
	customer, err := booking.NewCustomer(in.Customer.Name, in.Customer.Phone, in.Customer.Email)
	if err != nil {
		return booking.Customer{}, nil, errs.NewValidation("customer", err.Error())
	}

	participants := make([]booking.Participant, 0, len(in.Participants))
	for _, p := range in.Participants {
		participant, err := booking.NewParticipant(p.Name, p.Phone, p.SportType, p.Age, p.IsBooker)
		if err != nil {
			return booking.Customer{}, nil, errs.NewValidation("participants", err.Error())
		}
		participants = append(participants, participant)
	}
	return customer, participants, nil
}

func conflictOf(id slot.Identity, reason string) errs.SlotConflict {
	return errs.SlotConflict{
		CourtID:   id.CourtID.String(),
		Date:      id.Date.String(),
		StartTime: id.Start.String(),
		Reason:    reason,
	}
}

func conflictFromItems(items []booking.Item, attempted int) error {
	conflicts := make([]errs.SlotConflict, len(items))
	for i, it := range items {
		conflicts[i] = conflictOf(it.Slot(), errs.ConflictReasonBooked)
	}
	return errs.NewConflict(conflicts, attempted)
}

func newBookingEvent(b *booking.Booking, at time.Time) bookingEvent {
	items := make([]bookingEventItem, len(b.Items()))
	for i, it := range b.Items() {
		items[i] = bookingEventItem{
			CourtID:    it.Slot().CourtID,
			Date:       it.Slot().Date.String(),
			StartTime:  it.Slot().Start.String(),
			EndTime:    it.End().String(),
			PriceMinor: it.Price().Minor(),
		}
	}
	return bookingEvent{
		BookingID:     b.ID(),
		BookingNumber: b.Number().String(),
		CustomerID:    b.CustomerID(),
		CustomerEmail: b.Customer().Email(),
		Status:        b.Status().String(),
		TotalMinor:    b.Total().Minor(),
		Items:         items,
		OccurredAt:    at,
	}
}

type hashedItem struct {
	Slot string `json:"slot"`
}

type hashedCheckout struct {
	Items        []hashedItem       `json:"items"`
	Customer     CustomerInput      `json:"customer"`
	Participants []ParticipantInput `json:"participants"`
	Note         string             `json:"note"`
}

// requestHash fingerprints a checkout so a reused idempotency key can be
// told apart from a retry of the same request.
func requestHash(in CheckoutInput) string {
	h := hashedCheckout{
		Items:        make([]hashedItem, len(in.Items)),
		Customer:     in.Customer,
		Participants: in.Participants,
		Note:         in.Note,
	}
	for i, id := range in.Items {
		h.Items[i] = hashedItem{Slot: id.Key()}
	}
	data, _ := json.Marshal(h)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func idHash(id uuid.UUID) string {
	sum := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(sum[:])
}
