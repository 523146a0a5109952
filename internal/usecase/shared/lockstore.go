package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/lock"
	"court-booking/internal/domain/slot"
)

//go:generate mockgen -source=lockstore.go -destination=../../../tests/mock/shared/lockstore.go -package=sharedmock

// LockStore holds short-lived single-holder claims on slots. Implementations
// must fail closed: any error from Acquire means the caller does not hold the slot.
type LockStore interface {
	// Acquire claims the slot for holder. Re-acquiring an own lock reports
	// true and leaves the remaining TTL untouched.
	Acquire(ctx context.Context, id slot.Identity, holder string) (bool, error)
	// Release deletes the lock whoever holds it. Releasing a missing lock is a no-op.
	Release(ctx context.Context, id slot.Identity) error
	// ReleaseOwned deletes the lock only while it still belongs to holder.
	ReleaseOwned(ctx context.Context, id slot.Identity, holder string) (bool, error)
	CurrentHolder(ctx context.Context, id slot.Identity) (string, bool, error)
	// Holders batches CurrentHolder; the result is keyed by slot.Identity.Key
	// and only contains held slots.
	Holders(ctx context.Context, ids []slot.Identity) (map[string]string, error)
	// RemainingTTL is zero for absent or expired locks.
	RemainingTTL(ctx context.Context, id slot.Identity) (time.Duration, error)
	ReleaseAllFor(ctx context.Context, holder string) (int, error)
	HeldBy(ctx context.Context, holder string) ([]lock.Lock, error)
}
