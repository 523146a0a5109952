package shared

import (
	"context"
	"errors"
	"log/slog"

	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

// TxBeginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// RunInTx runs fn once in a transaction opened with opts. There is no retry:
// callers are pollers whose next tick picks the work up again.
func RunInTx[T any](ctx context.Context, db TxBeginner, opts pgx.TxOptions, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("worker tx rollback failed", "iso", string(opts.IsoLevel), "error", rbErr)
		}
	}()

	out, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}
	committed = true
	return out, nil
}
