//go:build unit

package lockstore_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra/lockstore"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courtA = uuid.MustParse("0b7f6c1e-7c43-4c4e-9f5e-4a4c1d2a0001")

func newStore(t *testing.T) (*lockstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig()
	return lockstore.NewRedisStore(client, cfg.Lock, cfg.Redis), mr
}

func slotAt(t *testing.T, start string) slot.Identity {
	t.Helper()
	id, err := slot.Parse(courtA.String(), "2025-06-01", start)
	require.NoError(t, err)
	return id
}

func TestAcquire(t *testing.T) {
	ctx := context.Background()

	t.Run("second holder is refused", func(t *testing.T) {
		store, _ := newStore(t)
		id := slotAt(t, "14:00")

		ok, err := store.Acquire(ctx, id, "u1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Acquire(ctx, id, "u2")
		require.NoError(t, err)
		assert.False(t, ok)

		holder, held, err := store.CurrentHolder(ctx, id)
		require.NoError(t, err)
		assert.True(t, held)
		assert.Equal(t, "u1", holder)
	})

	t.Run("re-acquire by the same holder does not extend the TTL", func(t *testing.T) {
		store, mr := newStore(t)
		id := slotAt(t, "14:00")

		ok, err := store.Acquire(ctx, id, "u1")
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(5 * time.Minute)

		ok, err = store.Acquire(ctx, id, "u1")
		require.NoError(t, err)
		assert.True(t, ok)

		remaining, err := store.RemainingTTL(ctx, id)
		require.NoError(t, err)
		assert.LessOrEqual(t, remaining, 15*time.Minute)
		assert.Greater(t, remaining, time.Duration(0))
	})

	t.Run("expired lock can be taken by another holder", func(t *testing.T) {
		store, mr := newStore(t)
		id := slotAt(t, "14:00")

		_, err := store.Acquire(ctx, id, "u1")
		require.NoError(t, err)

		mr.FastForward(store.TTL() + time.Second)

		_, held, err := store.CurrentHolder(ctx, id)
		require.NoError(t, err)
		assert.False(t, held)

		ok, err := store.Acquire(ctx, id, "u2")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty holder is rejected", func(t *testing.T) {
		store, _ := newStore(t)

		ok, err := store.Acquire(ctx, slotAt(t, "14:00"), "")
		assert.False(t, ok)
		assert.True(t, errors.Is(err, errs.ErrValidation))
	})
}

func TestAcquire_ConcurrentHoldersGetMutualExclusion(t *testing.T) {
	store, _ := newStore(t)
	id := slotAt(t, "14:00")

	const n = 50
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(holder string) {
			defer wg.Done()
			<-start
			ok, err := store.Acquire(context.Background(), id, holder)
			if err == nil && ok {
				winners.Add(1)
			}
		}(uuid.NewString())
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("releasing twice is a no-op", func(t *testing.T) {
		store, _ := newStore(t)
		id := slotAt(t, "14:00")

		_, err := store.Acquire(ctx, id, "u1")
		require.NoError(t, err)

		require.NoError(t, store.Release(ctx, id))
		require.NoError(t, store.Release(ctx, id))

		_, held, err := store.CurrentHolder(ctx, id)
		require.NoError(t, err)
		assert.False(t, held)

		locks, err := store.HeldBy(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, locks)
	})

	t.Run("release owned ignores other holders", func(t *testing.T) {
		store, _ := newStore(t)
		id := slotAt(t, "14:00")

		_, err := store.Acquire(ctx, id, "u1")
		require.NoError(t, err)

		ok, err := store.ReleaseOwned(ctx, id, "u2")
		require.NoError(t, err)
		assert.False(t, ok)

		holder, _, err := store.CurrentHolder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "u1", holder)

		ok, err = store.ReleaseOwned(ctx, id, "u1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release all only touches the holder's locks", func(t *testing.T) {
		store, _ := newStore(t)
		a, b, c := slotAt(t, "14:00"), slotAt(t, "15:00"), slotAt(t, "16:00")

		for _, id := range []slot.Identity{a, b} {
			ok, err := store.Acquire(ctx, id, "u1")
			require.NoError(t, err)
			require.True(t, ok)
		}
		ok, err := store.Acquire(ctx, c, "u2")
		require.NoError(t, err)
		require.True(t, ok)

		n, err := store.ReleaseAllFor(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		held, err := store.Holders(ctx, []slot.Identity{a, b, c})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{c.Key(): "u2"}, held)

		n, err = store.ReleaseAllFor(ctx, "u1")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestHeldBy_PrunesExpiredEntries(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	a, b := slotAt(t, "14:00"), slotAt(t, "15:00")

	_, err := store.Acquire(ctx, a, "u1")
	require.NoError(t, err)
	mr.FastForward(10 * time.Minute)
	_, err = store.Acquire(ctx, b, "u1")
	require.NoError(t, err)
	mr.FastForward(11 * time.Minute)

	locks, err := store.HeldBy(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, locks, 1)
	assert.Equal(t, b, locks[0].Slot)
	assert.Equal(t, "u1", locks[0].HolderID)

	members, err := mr.SMembers("lock:idx:holder:u1")
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestRemainingTTL_AbsentIsZero(t *testing.T) {
	store, _ := newStore(t)

	d, err := store.RemainingTTL(context.Background(), slotAt(t, "14:00"))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	id := slotAt(t, "14:00")
	mr.Close()

	ok, err := store.Acquire(ctx, id, "u1")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))

	_, _, err = store.CurrentHolder(ctx, id)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))

	err = store.Release(ctx, id)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))
}

func TestJanitor_SweepOnce(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	m := metrics.New(prometheus.NewRegistry())
	janitor := lockstore.NewJanitor(store, m, time.Minute)

	_, err := store.Acquire(ctx, slotAt(t, "14:00"), "u1")
	require.NoError(t, err)
	mr.FastForward(10 * time.Minute)
	_, err = store.Acquire(ctx, slotAt(t, "15:00"), "u1")
	require.NoError(t, err)
	_, err = store.Acquire(ctx, slotAt(t, "16:00"), "u2")
	require.NoError(t, err)
	mr.FastForward(11 * time.Minute)

	held, pruned := janitor.SweepOnce(ctx)
	assert.Equal(t, 2, held)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, float64(2), promtest.ToFloat64(m.LocksHeld))
	assert.Equal(t, float64(1), promtest.ToFloat64(m.LockPruned))
}

func TestInstrumented_CountsResults(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	m := metrics.New(prometheus.NewRegistry())
	instrumented := lockstore.NewInstrumented(store, m)
	id := slotAt(t, "14:00")

	_, err := instrumented.Acquire(ctx, id, "u1")
	require.NoError(t, err)
	_, err = instrumented.Acquire(ctx, id, "u2")
	require.NoError(t, err)

	assert.Equal(t, float64(1), promtest.ToFloat64(m.LockOpsTotal.WithLabelValues("acquire", metrics.ResultSuccess)))
	assert.Equal(t, float64(1), promtest.ToFloat64(m.LockOpsTotal.WithLabelValues("acquire", metrics.ResultBusy)))
}

// beforeScript runs fn once, right before the first script call on a client.
type beforeScript struct {
	once sync.Once
	fn   func()
}

func (h *beforeScript) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *beforeScript) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if name := cmd.Name(); name == "evalsha" || name == "eval" {
			h.once.Do(h.fn)
		}
		return next(ctx, cmd)
	}
}

func (h *beforeScript) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestIndexPrune_KeepsLockReacquiredMidPrune(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()

	testCases := []struct {
		name  string
		prune func(t *testing.T, store *lockstore.RedisStore)
	}{
		{
			name: "janitor sweep",
			prune: func(t *testing.T, store *lockstore.RedisStore) {
				lockstore.NewJanitor(store, metrics.New(prometheus.NewRegistry()), time.Minute).SweepOnce(ctx)
			},
		},
		{
			name: "held by",
			prune: func(t *testing.T, store *lockstore.RedisStore) {
				locks, err := store.HeldBy(ctx, "u1")
				require.NoError(t, err)
				assert.Len(t, locks, 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mr := miniredis.RunT(t)
			setup := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
			t.Cleanup(func() { _ = setup.Close() })
			other := lockstore.NewRedisStore(setup, cfg.Lock, cfg.Redis)

			a, b := slotAt(t, "14:00"), slotAt(t, "15:00")
			_, err := other.Acquire(ctx, a, "u1")
			require.NoError(t, err)
			mr.FastForward(cfg.Lock.TTL / 2)
			_, err = other.Acquire(ctx, b, "u1")
			require.NoError(t, err)
			mr.FastForward(cfg.Lock.TTL/2 + time.Second)

			// a has expired but is still indexed; u1 takes it again while the
			// prune is in flight.
			hooked := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
			t.Cleanup(func() { _ = hooked.Close() })
			hooked.AddHook(&beforeScript{fn: func() {
				ok, err := other.Acquire(ctx, a, "u1")
				require.NoError(t, err)
				require.True(t, ok)
			}})

			tc.prune(t, lockstore.NewRedisStore(hooked, cfg.Lock, cfg.Redis))

			n, err := other.ReleaseAllFor(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			ok, err := other.Acquire(ctx, a, "u2")
			require.NoError(t, err)
			assert.True(t, ok, "abandoned cart must free every slot")
		})
	}
}

func TestAcquire_HungStoreTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})

	client := redis.NewClient(&redis.Options{
		Addr:                  ln.Addr().String(),
		MaxRetries:            -1,
		ContextTimeoutEnabled: true,
	})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig()
	cfg.Redis.OpTimeout = 300 * time.Millisecond
	store := lockstore.NewRedisStore(client, cfg.Lock, cfg.Redis)

	start := time.Now()
	ok, err := store.Acquire(context.Background(), slotAt(t, "14:00"), "u1")
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	assert.GreaterOrEqual(t, elapsed, cfg.Redis.OpTimeout)
	assert.Less(t, elapsed, cfg.Redis.OpTimeout+time.Second)
}
