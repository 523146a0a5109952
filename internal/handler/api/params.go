package api

import (
	"net/http"
	"strconv"

	"court-booking/internal/domain/slot"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// slotParam reads the :courtId/:date/:startTime path triple.
func slotParam(c *gin.Context) (slot.Identity, bool) {
	id, err := slot.Parse(c.Param("courtId"), c.Param("date"), c.Param("startTime"))
	if err != nil {
		httperr.Abort(c, errs.NewValidation("slot", err.Error()))
		return slot.Identity{}, false
	}
	return id, true
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func actorOf(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httperr.Abort(c, errs.NewValidation("limit", "must be a non-negative integer"))
		return 0, false
	}
	return n, true
}
