package middleware

import (
	"court-booking/internal/domain/user"
	"court-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetActor rebuilds the authenticated caller from the request context.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	rawID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return shared.Actor{}, false
	}
	id, ok := rawID.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return shared.Actor{}, false
	}

	var role user.Role
	if rawRole, exists := c.Get(ctxUserRoleKey); exists {
		role, _ = rawRole.(user.Role)
	}
	return shared.Actor{ID: id, Role: role}, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	return actor.ID, ok
}
