package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const replayedHeader = "Idempotent-Replayed"

type CheckoutHandler struct {
	cmds commands.ReservationCommands
}

func NewCheckoutHandler(cmds commands.ReservationCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Check out the cart
// @Description Commits every cart slot as one PENDING booking, or none of them. A repeated Idempotency-Key replays the stored booking.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this checkout attempt"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}

	rawKey := c.GetHeader("Idempotency-Key")
	if rawKey == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrMissingIdemKey, "Idempotency-Key header is required", nil)
		return
	}
	key, err := uuid.Parse(rawKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key format", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmds.SubmitCheckout(c.Request.Context(), actor, in, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.Replayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Header("Location", "/api/bookings/"+resp.ID.String())
	c.JSON(http.StatusCreated, resp)
}
