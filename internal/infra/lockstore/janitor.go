package lockstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"court-booking/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const scanCount = 500

// Janitor periodically counts held locks and prunes holder index entries
// whose lock expired or changed hands. Lock expiry itself is left to Redis.
type Janitor struct {
	store    *RedisStore
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewJanitor(store *RedisStore, m *metrics.Metrics, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		store:    store,
		metrics:  m,
		interval: interval,
	}
}

func (j *Janitor) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	j.SweepOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.SweepOnce(ctx)
		}
	}
}

// SweepOnce returns the number of held locks and pruned index entries.
func (j *Janitor) SweepOnce(ctx context.Context) (held, pruned int) {
	start := time.Now()
	client := j.store.client

	iter := client.Scan(ctx, 0, j.store.prefix+":*", scanCount).Iterator()
	var indexes []string
	for iter.Next(ctx) {
		key := iter.Val()
		if j.store.isIndexKey(key) {
			indexes = append(indexes, key)
			continue
		}
		held++
	}
	if err := iter.Err(); err != nil {
		slog.Warn("lock sweep scan failed", "error", err)
		return held, pruned
	}
	j.metrics.LocksHeld.Set(float64(held))

	for _, idx := range indexes {
		n, err := j.pruneIndex(ctx, client, idx)
		if err != nil {
			slog.Warn("lock index prune failed", "index", idx, "error", err)
			continue
		}
		pruned += n
	}
	if pruned > 0 {
		j.metrics.LockPruned.Add(float64(pruned))
		slog.Info("lock sweep pruned stale index entries",
			"held", held,
			"pruned", pruned,
			"latency_ms", time.Since(start).Milliseconds())
	}
	return held, pruned
}

func (j *Janitor) pruneIndex(ctx context.Context, client redis.UniversalClient, idx string) (int, error) {
	holder, ok := strings.CutPrefix(idx, j.store.indexPrefix())
	if !ok || holder == "" {
		return 0, nil
	}
	members, err := client.SMembers(ctx, idx).Result()
	if err != nil {
		return 0, err
	}
	if len(members) == 0 {
		return 0, nil
	}
	return j.store.pruneIndex(ctx, holder, members)
}
