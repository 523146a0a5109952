package lockstore

import (
	"context"
	"time"

	"court-booking/internal/domain/lock"
	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/shared"
)

// Instrumented records per-operation counters and latency around any LockStore.
type Instrumented struct {
	next    shared.LockStore
	metrics *metrics.Metrics
}

func NewInstrumented(next shared.LockStore, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (s *Instrumented) observe(op string, start time.Time, result string) {
	s.metrics.LockOpMS.WithLabelValues(op).Observe(float64(time.Since(start).Milliseconds()))
	s.metrics.LockOpsTotal.WithLabelValues(op, result).Inc()
}

func resultOf(ok bool, err error) string {
	switch {
	case err != nil:
		return metrics.ResultFail
	case !ok:
		return metrics.ResultBusy
	default:
		return metrics.ResultSuccess
	}
}

func (s *Instrumented) Acquire(ctx context.Context, id slot.Identity, holder string) (bool, error) {
	start := time.Now()
	ok, err := s.next.Acquire(ctx, id, holder)
	s.observe("acquire", start, resultOf(ok, err))
	return ok, err
}

func (s *Instrumented) Release(ctx context.Context, id slot.Identity) error {
	start := time.Now()
	err := s.next.Release(ctx, id)
	s.observe("release", start, resultOf(true, err))
	return err
}

func (s *Instrumented) ReleaseOwned(ctx context.Context, id slot.Identity, holder string) (bool, error) {
	start := time.Now()
	ok, err := s.next.ReleaseOwned(ctx, id, holder)
	s.observe("release_owned", start, resultOf(ok, err))
	return ok, err
}

func (s *Instrumented) CurrentHolder(ctx context.Context, id slot.Identity) (string, bool, error) {
	start := time.Now()
	holder, ok, err := s.next.CurrentHolder(ctx, id)
	s.observe("current_holder", start, resultOf(true, err))
	return holder, ok, err
}

func (s *Instrumented) Holders(ctx context.Context, ids []slot.Identity) (map[string]string, error) {
	start := time.Now()
	held, err := s.next.Holders(ctx, ids)
	s.observe("holders", start, resultOf(true, err))
	return held, err
}

func (s *Instrumented) RemainingTTL(ctx context.Context, id slot.Identity) (time.Duration, error) {
	start := time.Now()
	d, err := s.next.RemainingTTL(ctx, id)
	s.observe("remaining_ttl", start, resultOf(true, err))
	return d, err
}

func (s *Instrumented) ReleaseAllFor(ctx context.Context, holder string) (int, error) {
	start := time.Now()
	n, err := s.next.ReleaseAllFor(ctx, holder)
	s.observe("release_all", start, resultOf(true, err))
	return n, err
}

func (s *Instrumented) HeldBy(ctx context.Context, holder string) ([]lock.Lock, error) {
	start := time.Now()
	locks, err := s.next.HeldBy(ctx, holder)
	s.observe("held_by", start, resultOf(true, err))
	return locks, err
}
