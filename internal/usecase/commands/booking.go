package commands

import (
	"context"
	"encoding/json"
	"errors"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var ErrInvalidBookingState = errs.New("booking cannot move to the requested status")

type BookingCommands interface {
	// Confirm records that payment was verified. Staff only.
	Confirm(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	// Cancel frees the booking's slots. Owners and staff may cancel; anyone
	// else gets queries.ErrBookingNotFound.
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	bookings queries.BookingQueries
	clock    clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookings queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		bookings: bookings,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, id)
		if err != nil {
			return err
		}

		from := b.Status()
		now := uc.clock.Now()
		if err := b.Confirm(now); err != nil {
			return errs.Mark(err, ErrInvalidBookingState)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, b, TopicBookingConfirmed)
	})
	if err != nil {
		return nil, uc.mapErr("confirm", err)
	}
	return uc.view(ctx, id)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if !b.IsOwnedBy(actor.ID) && !actor.IsStaff() {
			return queries.ErrBookingNotFound
		}

		from := b.Status()
		now := uc.clock.Now()
		if err := b.Cancel(now); err != nil {
			return errs.Mark(err, ErrInvalidBookingState)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from); err != nil {
			return err
		}
		if _, err := tx.Bookings().ReleaseItems(ctx, tx.DB(), b.ID(), now); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, b, TopicBookingCancelled)
	})
	if err != nil {
		return nil, uc.mapErr("cancel", err)
	}
	return uc.view(ctx, id)
}

func (uc *bookingUseCaseImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, queries.ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, b *booking.Booking, topic string) error {
	payload, err := json.Marshal(newBookingEvent(b, uc.clock.Now()))
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), eventKind, topic, payload, uc.clock.Now())
}

func (uc *bookingUseCaseImpl) view(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := uc.bookings.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, durableStoreErr("read_booking", err)
	}
	return v, nil
}

func (uc *bookingUseCaseImpl) mapErr(op string, err error) error {
	if errs.Is(err, queries.ErrBookingNotFound) || errs.Is(err, ErrInvalidBookingState) || errors.Is(err, booking.ErrInvalidStatusTransition) {
		return err
	}
	return durableStoreErr(op, err)
}
