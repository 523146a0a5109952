package httperr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Clients branch on these rather than on
// the human message.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeSlotConflict       = "slot_conflict"
	CodePartialCommit      = "partial_commit"
	CodeInvalidTransition  = "invalid_transition"
	CodeIdempotencyReused  = "idempotency_key_reused"
	CodeRequestInProgress  = "request_in_progress"
	CodeServiceUnavailable = "service_unavailable"
	CodeInternal           = "internal"
)

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status     int  `json:"-"`
	RetryAfter int  `json:"-"` // seconds, 0 means no header
	Error      Body `json:"error"`
	Detail     any  `json:"detail,omitempty"`
}

// AbortWithError picks the code from the status.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, Response{Status: status, Error: Body{Code: codeForStatus(status), Message: msg}, Detail: detail}, err)
}

// abort records err on the gin context for the logging middleware and
// writes resp. The original err never reaches the client.
func abort(c *gin.Context, resp Response, err error) {
	if err == nil {
		err = errors.New(resp.Error.Message)
	}
	if resp.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(resp.RetryAfter))
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		if status >= 500 {
			return CodeInternal
		}
		return CodeInvalidRequest
	}
}
