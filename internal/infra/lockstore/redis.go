package lockstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"court-booking/internal/domain/lock"
	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const storeName = "redis"

// RedisStore keeps one key per held slot plus a set per holder that indexes
// the holder's keys. The index is advisory: members whose lock expired or
// changed hands are pruned on read and by the Janitor.
type RedisStore struct {
	client    redis.UniversalClient
	prefix    string
	ttl       time.Duration
	opTimeout time.Duration
	now       func() time.Time
}

func NewRedisStore(client redis.UniversalClient, lockCfg config.LockConfig, redisCfg config.RedisConfig) *RedisStore {
	ttl := lockCfg.TTL
	if ttl <= 0 {
		ttl = lock.DefaultTTL
	}
	return &RedisStore{
		client:    client,
		prefix:    lockCfg.KeyPrefix,
		ttl:       ttl,
		opTimeout: redisCfg.OpTimeout,
		now:       time.Now,
	}
}

func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}

func (s *RedisStore) Acquire(ctx context.Context, id slot.Identity, holder string) (bool, error) {
	if holder == "" {
		return false, errs.NewValidation("holder", "required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := acquireScript.Run(ctx, s.client,
		[]string{s.lockKey(id), s.indexKey(holder)},
		holder, s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, unavailable("acquire", err)
	}
	return n == 1, nil
}

func (s *RedisStore) Release(ctx context.Context, id slot.Identity) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := releaseScript.Run(ctx, s.client, []string{s.lockKey(id)}, s.indexPrefix()).Err(); err != nil {
		return unavailable("release", err)
	}
	return nil
}

func (s *RedisStore) ReleaseOwned(ctx context.Context, id slot.Identity, holder string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := releaseOwnedScript.Run(ctx, s.client,
		[]string{s.lockKey(id), s.indexKey(holder)},
		holder,
	).Int()
	if err != nil {
		return false, unavailable("release_owned", err)
	}
	return n == 1, nil
}

func (s *RedisStore) CurrentHolder(ctx context.Context, id slot.Identity) (string, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	holder, err := s.client.Get(ctx, s.lockKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("current_holder", err)
	}
	return holder, true, nil
}

func (s *RedisStore) Holders(ctx context.Context, ids []slot.Identity) (map[string]string, error) {
	held := make(map[string]string)
	if len(ids) == 0 {
		return held, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.lockKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable("holders", err)
	}
	for i, v := range values {
		if holder, ok := v.(string); ok {
			held[ids[i].Key()] = holder
		}
	}
	return held, nil
}

func (s *RedisStore) RemainingTTL(ctx context.Context, id slot.Identity) (time.Duration, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.client.PTTL(ctx, s.lockKey(id)).Result()
	if err != nil {
		return 0, unavailable("remaining_ttl", err)
	}
	// -2 (missing) and -1 (no expiry) both read as nothing left.
	if d <= 0 {
		return 0, nil
	}
	return d, nil
}

func (s *RedisStore) ReleaseAllFor(ctx context.Context, holder string) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := releaseAllScript.Run(ctx, s.client, []string{s.indexKey(holder)}, holder).Int()
	if err != nil {
		return 0, unavailable("release_all", err)
	}
	return n, nil
}

func (s *RedisStore) HeldBy(ctx context.Context, holder string) ([]lock.Lock, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	idx := s.indexKey(holder)
	members, err := s.client.SMembers(ctx, idx).Result()
	if err != nil {
		return nil, unavailable("held_by", err)
	}
	if len(members) == 0 {
		return []lock.Lock{}, nil
	}

	pipe := s.client.Pipeline()
	gets := make([]*redis.StringCmd, len(members))
	ttls := make([]*redis.DurationCmd, len(members))
	for i, key := range members {
		gets[i] = pipe.Get(ctx, key)
		ttls[i] = pipe.PTTL(ctx, key)
	}
	// redis.Nil from individual GETs is expected and surfaces through Exec.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, unavailable("held_by", err)
	}

	now := s.now()
	locks := make([]lock.Lock, 0, len(members))
	var stale []string
	for i, key := range members {
		owner, err := gets[i].Result()
		if err != nil || owner != holder || ttls[i].Val() <= 0 {
			stale = append(stale, key)
			continue
		}
		id, err := s.parseLockKey(key)
		if err != nil {
			slog.Warn("skipping malformed lock key in holder index", "key", key, "error", err)
			continue
		}
		locks = append(locks, lock.Lock{
			Slot:      id,
			HolderID:  holder,
			ExpiresAt: now.Add(ttls[i].Val()),
		})
	}

	if len(stale) > 0 {
		if _, err := s.pruneIndex(ctx, holder, stale); err != nil {
			slog.Warn("failed to prune holder index", "holder", holder, "error", err)
		}
	}

	return locks, nil
}

// pruneIndex removes candidates from holder's index unless the holder owns
// them at execution time.
func (s *RedisStore) pruneIndex(ctx context.Context, holder string, candidates []string) (int, error) {
	args := make([]any, 0, len(candidates)+1)
	args = append(args, holder)
	for _, k := range candidates {
		args = append(args, k)
	}
	return pruneIndexScript.Run(ctx, s.client, []string{s.indexKey(holder)}, args...).Int()
}

func (s *RedisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *RedisStore) lockKey(id slot.Identity) string {
	return s.prefix + ":" + id.Key()
}

func (s *RedisStore) indexPrefix() string {
	return s.prefix + ":idx:holder:"
}

func (s *RedisStore) indexKey(holder string) string {
	return s.indexPrefix() + holder
}

func (s *RedisStore) isIndexKey(key string) bool {
	return strings.HasPrefix(key, s.prefix+":idx:")
}

func (s *RedisStore) parseLockKey(key string) (slot.Identity, error) {
	rest, ok := strings.CutPrefix(key, s.prefix+":")
	if !ok {
		return slot.Identity{}, slot.ErrMalformedKey
	}
	return slot.ParseKey(rest)
}

func unavailable(op string, err error) error {
	return errs.NewStoreUnavailable(storeName, op, err)
}
