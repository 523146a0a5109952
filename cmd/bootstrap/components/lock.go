package components

import (
	"court-booking/internal/infra/lockstore"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewRedisLockStore,
		NewLockStore,
		NewLockJanitor,
	),
)

func NewRedisLockStore(client redis.UniversalClient, cfg config.Config) *lockstore.RedisStore {
	return lockstore.NewRedisStore(client, cfg.Lock, cfg.Redis)
}

// NewLockStore is the store every use case sees: the Redis store with
// per-operation metrics.
func NewLockStore(store *lockstore.RedisStore, m *metrics.Metrics) shared.LockStore {
	return lockstore.NewInstrumented(store, m)
}

func NewLockJanitor(store *lockstore.RedisStore, m *metrics.Metrics, cfg config.Config) *lockstore.Janitor {
	return lockstore.NewJanitor(store, m, cfg.Lock.SweepInterval)
}
