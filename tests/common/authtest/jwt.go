//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the service accepts. The user id doubles as the
// lock holder, so two tokens with different ids are two competing carts.
type JWTHelper struct {
	secret   string
	duration string
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{secret: cfg.Secret, duration: cfg.Duration}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	d, err := time.ParseDuration(h.duration)
	require.NoError(t, err)
	return h.sign(t, d, userID, role)
}

// Customer returns a fresh customer id and its token.
func (h *JWTHelper) Customer(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleCustomer)
}

// Staff returns a token for a new staff member.
func (h *JWTHelper) Staff(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), user.RoleStaff)
}

// CreateExpiredToken is past its expiry by more than the validator's leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, -5*time.Minute, userID, role)
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, d).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
