package bootstrap

import (
	"log/slog"

	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logBookingSettings),
)

// Secrets and connection strings are left out.
func logBookingSettings(cfg config.Config) {
	slog.Info("booking settings",
		"timezone", cfg.Booking.TimeZone,
		"slot_granularity", cfg.Booking.SlotGranularity.String(),
		"max_cart_items", cfg.Booking.MaxCartItems,
		"lock_ttl", cfg.Lock.TTL.String(),
		"lock_prefix", cfg.Lock.KeyPrefix,
		"outbox_enabled", cfg.AMQP.URL != "",
		"migrate_on_start", cfg.DB.MigrateOnStart,
	)
}
