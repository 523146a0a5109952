package httperr

import (
	"errors"
	"net/http"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConflictDetail struct {
	Conflicts []errs.SlotConflict `json:"conflicts"`
	Attempted int                 `json:"attempted,omitempty"`
}

type ValidationDetail struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// Abort renders err using the reservation error taxonomy. Anything it does
// not recognize is a 500.
func Abort(c *gin.Context, err error) {
	var (
		pce *errs.PartialCommitError
		ce  *errs.ConflictError
		ve  *errs.ValidationError
	)
	resp := Response{Status: http.StatusInternalServerError, Error: Body{Code: CodeInternal, Message: "Internal error"}}
	switch {
	case errors.As(err, &pce):
		resp = conflict(CodePartialCommit, "One or more slots are no longer available",
			ConflictDetail{Conflicts: pce.Conflicts, Attempted: pce.Attempted})
	case errors.As(err, &ce):
		resp = conflict(CodeSlotConflict, "Slot is no longer available",
			ConflictDetail{Conflicts: ce.Conflicts})
	case errors.Is(err, errs.ErrStoreUnavailable):
		resp = Response{
			Status:     http.StatusServiceUnavailable,
			RetryAfter: 1,
			Error:      Body{Code: CodeServiceUnavailable, Message: "Service temporarily unavailable, try again"},
		}
	case errors.As(err, &ve):
		resp = Response{
			Status: http.StatusBadRequest,
			Error:  Body{Code: CodeInvalidRequest, Message: "Invalid request"},
			Detail: ValidationDetail{Field: ve.Field, Reason: ve.Reason},
		}
	case errs.Is(err, queries.ErrBookingNotFound):
		resp = Response{Status: http.StatusNotFound, Error: Body{Code: CodeNotFound, Message: "Not found"}}
	case errs.Is(err, commands.ErrInvalidBookingState):
		resp = conflict(CodeInvalidTransition, "Booking cannot change to the requested status", nil)
	case errs.Is(err, commands.ErrDuplicateRequest):
		resp = Response{
			Status: http.StatusUnprocessableEntity,
			Error:  Body{Code: CodeIdempotencyReused, Message: "Idempotency key was used with a different request"},
		}
	case errs.Is(err, commands.ErrRequestInProgress):
		resp = conflict(CodeRequestInProgress, "Request with this idempotency key is still in progress", nil)
	}
	abort(c, resp, err)
}

func conflict(code, msg string, detail any) Response {
	return Response{Status: http.StatusConflict, Error: Body{Code: code, Message: msg}, Detail: detail}
}

// AbortBinding reports a request that failed gin binding as a validation error.
func AbortBinding(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, errs.NewValidation("", err.Error()), "Invalid request",
		ValidationDetail{Reason: err.Error()})
}
