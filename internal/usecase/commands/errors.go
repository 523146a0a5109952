package commands

import (
	"context"
	"errors"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateRequest  = errs.New("idempotency key reused with a different request")
	ErrRequestInProgress = errs.New("a request with this idempotency key is still in progress")
	ErrMissingIdemKey    = errs.New("idempotency key is required")
)

const storePostgres = "postgres"

// durableStoreErr surfaces infrastructure failures of the booking database as
// StoreUnavailableError. Taxonomy errors and domain errors pass through.
func durableStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrValidation) ||
		errors.Is(err, errs.ErrStoreUnavailable) {
		return err
	}

	var connErr *pgconn.ConnectError
	switch {
	case infra.IsKind(err, infra.KindDBFailure),
		errs.Is(err, shared.ErrTransactionBegin),
		errs.Is(err, shared.ErrTransactionCommit),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &connErr):
		return errs.NewStoreUnavailable(storePostgres, op, err)
	}
	return err
}
