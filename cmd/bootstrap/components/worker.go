package components

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"court-booking/internal/infra/lockstore"
	"court-booking/internal/infra/mq"
	"court-booking/internal/infra/repository"
	"court-booking/internal/infra/worker"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

var WorkerModule = fx.Module("worker",
	fx.Invoke(startWorkers),
)

type workerParams struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Config        config.Config
	Pool          *pgxpool.Pool
	Janitor       *lockstore.Janitor
	Notifications *repository.NotificationRepository
	Idempotency   *repository.IdempotencyRepository
	Publisher     *mq.Publisher
	Metrics       *metrics.Metrics
}

type runner interface {
	Run(ctx context.Context)
}

func startWorkers(p workerParams) {
	runners := []runner{
		p.Janitor,
		worker.NewIdempotencySweeper(p.Idempotency, idempotencySweepInterval),
	}
	if p.Publisher != nil {
		runners = append(runners, worker.NewOutboxRelay(worker.PoolTx(p.Pool), p.Notifications, p.Publisher, p.Metrics, p.Config.Outbox))
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, r := range runners {
				wg.Add(1)
				go func(r runner) {
					defer wg.Done()
					r.Run(ctx)
				}(r)
			}
			slog.Info("background workers started", "count", len(runners))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
