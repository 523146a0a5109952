package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.ReservationCommands
	q    queries.BookingQueries
}

func NewCartHandler(cmds commands.ReservationCommands, q queries.BookingQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Lock slots for the cart
// @Description Tries to lock every slot. Each slot reports locked or the reason it was refused (held, booked, unbookable).
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Slots to lock"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/locks [post]
func (h *CartHandler) Reserve(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	ids, err := req.ToIdentities()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	outcomes, err := h.cmds.TryReserve(c.Request.Context(), actor, ids)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReserveOutcomes(outcomes))
}

// @Summary List cart locks
// @Description Slots the caller currently holds with their remaining time
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HeldSlotResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/locks [get]
func (h *CartHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	views, err := h.q.HeldSlots(c.Request.Context(), actor.HolderID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHeldSlots(views))
}

// @Summary Remove a slot from the cart
// @Tags cart
// @Security BearerAuth
// @Param courtId path string true "Court ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param startTime path string true "Start time (HH:MM)"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/locks/{courtId}/{date}/{startTime} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := slotParam(c)
	if !ok {
		return
	}
	if err := h.cmds.ReleaseSlot(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Abandon the cart
// @Description Releases every slot the caller holds
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart [delete]
func (h *CartHandler) Abandon(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	n, err := h.cmds.AbandonCart(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": n})
}
