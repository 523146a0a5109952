package api

import (
	"net/http"

	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reservations commands.ReservationCommands
	bookings     commands.BookingCommands
	q            queries.BookingQueries
}

func NewAdminHandler(reservations commands.ReservationCommands, bookings commands.BookingCommands, q queries.BookingQueries) *AdminHandler {
	return &AdminHandler{reservations: reservations, bookings: bookings, q: q}
}

// @Summary Confirm booking
// @Description Records that payment was verified
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/confirm [post]
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.bookings.Confirm(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Inspect a slot lock
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param courtId path string true "Court ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param startTime path string true "Start time (HH:MM)"
// @Success 200 {object} resdto.LockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/locks/{courtId}/{date}/{startTime} [get]
func (h *AdminHandler) InspectLock(c *gin.Context) {
	id, ok := slotParam(c)
	if !ok {
		return
	}
	view, err := h.q.InspectLock(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLockView(view))
}

// @Summary Force-release a slot lock
// @Description Drops the lock whoever holds it
// @Tags admin
// @Security BearerAuth
// @Param courtId path string true "Court ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param startTime path string true "Start time (HH:MM)"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/locks/{courtId}/{date}/{startTime} [delete]
func (h *AdminHandler) ForceRelease(c *gin.Context) {
	id, ok := slotParam(c)
	if !ok {
		return
	}
	if err := h.reservations.ForceRelease(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
