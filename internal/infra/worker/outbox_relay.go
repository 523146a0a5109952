package worker

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const publishTimeout = 5 * time.Second

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	RecordFailure(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, retryAt time.Time, terminal bool) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic, messageID string, body []byte) error
}

// TxFunc runs fn inside one database transaction.
type TxFunc func(ctx context.Context, fn func(tx sqlc.DBTX) (int, error)) (int, error)

// PoolTx claims jobs under ReadCommitted; SKIP LOCKED keeps concurrent
// relays off each other's rows.
func PoolTx(db shared.TxBeginner) TxFunc {
	return func(ctx context.Context, fn func(tx sqlc.DBTX) (int, error)) (int, error) {
		return shared.RunInTx(ctx, db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	}
}

// OutboxRelay drains notification_jobs into the broker. Jobs stay row-locked
// while they are published, so a second relay instance skips them.
type OutboxRelay struct {
	inTx      TxFunc
	jobs      JobStore
	publisher EventPublisher
	metrics   *metrics.Metrics
	cfg       config.OutboxConfig
	now       func() time.Time
}

func NewOutboxRelay(inTx TxFunc, jobs JobStore, publisher EventPublisher, m *metrics.Metrics, cfg config.OutboxConfig) *OutboxRelay {
	return &OutboxRelay{
		inTx:      inTx,
		jobs:      jobs,
		publisher: publisher,
		metrics:   m,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	t := time.NewTicker(r.cfg.PollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := r.RelayOnce(ctx); err != nil {
				slog.Warn("outbox relay batch failed", "error", err)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many jobs were sent.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	return r.inTx(ctx, func(tx sqlc.DBTX) (int, error) {
		now := r.now()
		jobs, err := r.jobs.ClaimDue(ctx, tx, now, r.cfg.BatchSize)
		if err != nil {
			return 0, err
		}

		sent := 0
		for _, job := range jobs {
			if err := r.publish(ctx, job); err != nil {
				if err := r.recordFailure(ctx, tx, job, err, now); err != nil {
					return sent, err
				}
				continue
			}
			if err := r.jobs.MarkSent(ctx, tx, job.ID); err != nil {
				return sent, err
			}
			r.metrics.OutboxPublishedTotal.WithLabelValues(job.Topic).Inc()
			sent++
		}
		return sent, nil
	})
}

func (r *OutboxRelay) publish(ctx context.Context, job repository.NotificationJob) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
}

func (r *OutboxRelay) recordFailure(ctx context.Context, tx sqlc.DBTX, job repository.NotificationJob, cause error, now time.Time) error {
	attempts := job.Attempts + 1
	terminal := attempts >= r.cfg.MaxAttempts
	retryAt := now.Add(r.backoff(attempts))

	slog.Warn("failed to publish booking event",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", attempts,
		"terminal", terminal,
		"error", cause)
	r.metrics.OutboxFailedTotal.WithLabelValues(job.Topic, strconv.FormatBool(terminal)).Inc()

	return r.jobs.RecordFailure(ctx, tx, job.ID, cause.Error(), retryAt, terminal)
}

// backoff doubles per attempt, capped at 64x the base.
func (r *OutboxRelay) backoff(attempts int32) time.Duration {
	shift := attempts - 1
	if shift > 6 {
		shift = 6
	}
	if shift < 0 {
		shift = 0
	}
	return r.cfg.RetryBackoff * time.Duration(1<<shift)
}
