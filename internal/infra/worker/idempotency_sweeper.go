package worker

import (
	"context"
	"log/slog"
	"time"
)

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// IdempotencySweeper deletes idempotency keys past their expiry.
type IdempotencySweeper struct {
	keys     ExpiredKeyDeleter
	interval time.Duration
}

func NewIdempotencySweeper(keys ExpiredKeyDeleter, interval time.Duration) *IdempotencySweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &IdempotencySweeper{keys: keys, interval: interval}
}

func (s *IdempotencySweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.keys.DeleteExpired(ctx)
			if err != nil {
				slog.Warn("failed to delete expired idempotency keys", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("deleted expired idempotency keys", "count", n)
			}
		}
	}
}
