package bootstrap

import (
	"fmt"
	"time"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Tokens are issued elsewhere; this service only needs the shared secret to
// validate them and to mint tokens in tests.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, ttl), nil
}
