package api

import (
	"net/http"

	"court-booking/internal/domain/slot"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description Slot grid for every active court on a date. Authenticated callers also see which slots are held, and by whom (self or other).
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.CourtAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		httperr.Abort(c, errs.NewValidation("date", "query parameter is required"))
		return
	}
	date, err := slot.ParseDate(raw)
	if err != nil {
		httperr.Abort(c, errs.NewValidation("date", err.Error()))
		return
	}

	var view *queries.AvailabilityView
	if actor, ok := middleware.GetActor(c); ok {
		view, err = h.q.GetAvailabilityFor(c.Request.Context(), date, actor.HolderID())
	} else {
		view, err = h.q.GetAvailability(c.Request.Context(), date)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
