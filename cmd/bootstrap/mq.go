package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/mq"
	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns nil when AMQP_URL is unset; the outbox relay is then
// not started and jobs wait in the table.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*mq.Publisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL not set, booking events will not be published")
		return nil, nil
	}

	pub, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
