//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	actor        shared.Actor
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.actor = shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	h := api.NewCheckoutHandler(s.mockCommands)
	s.router.POST("/checkout", headerAuth(s.actor.ID, s.actor.Role), h.Submit)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CheckoutHandlerTestSuite) TestSubmit() {
	url := "/checkout"
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}

	b := builder.NewCheckoutBuilder().WithStartTimes("18:00", "19:00")
	reqBody := b.BuildRequest()
	view := builder.NewBookingBuilder().WithCustomer(s.actor.ID).WithStartTimes("18:00", "19:00").BuildView()

	s.Run("success: 201 Created with Location", func() {
		s.mockCommands.EXPECT().
			SubmitCheckout(gomock.Any(), s.actor, gomock.Any(), key).
			DoAndReturn(func(_ any, _ shared.Actor, in commands.CheckoutInput, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Require().Len(in.Items, 2)
				s.Equal(slot.MustParseClockTime("19:00"), in.Items[1].Start)
				s.Equal("Somchai P.", in.Customer.Name)
				s.Require().Len(in.Participants, 1)
				s.True(in.Participants[0].IsBooker)
				return &commands.CheckoutResult{Booking: view}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("PENDING", body.Status)
		s.InDelta(1000.0, body.Total, 0.001)
		s.Len(body.Items, 2)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":            "/api/bookings/" + view.ID.String(),
			"Idempotent-Replayed": "",
		})
	})

	s.Run("success: replay returns 200 with the stored booking", func() {
		s.mockCommands.EXPECT().SubmitCheckout(gomock.Any(), s.actor, gomock.Any(), key).
			Return(&commands.CheckoutResult{Booking: view, Replayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")

		rec = httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCheckout{
			{name: "note length OK (500 chars)", mutate: testutil.Field("note", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
			{name: "note too long (501 chars)", mutate: testutil.Field("note", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "missing field: items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customer", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
			{name: "customer without phone", mutate: testutil.Field("customer", map[string]any{"name": "A"}), expectCode: http.StatusBadRequest},
			{name: "customer with bad email", mutate: testutil.Field("customer", map[string]any{"name": "A", "phone": "0812345678", "email": "nope"}), expectCode: http.StatusBadRequest},
			{name: "participant age out of range", mutate: testutil.Field("participants", []any{map[string]any{"name": "A", "age": 0, "isBooker": true}}), expectCode: http.StatusBadRequest},
			{name: "client-supplied price is rejected", mutate: testutil.Field("totalPrice", 1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().SubmitCheckout(gomock.Any(), s.actor, gomock.Any(), key).
						Return(&commands.CheckoutResult{Booking: view}, nil)
				}

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, headers, bearer)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 409 Conflict lists every conflicting slot", func() {
		conflicts := []errs.SlotConflict{
			{CourtID: b.CourtID.String(), Date: b.Date, StartTime: "19:00", Reason: errs.ConflictReasonBooked},
		}
		s.mockCommands.EXPECT().SubmitCheckout(gomock.Any(), s.actor, gomock.Any(), key).
			Return(nil, errs.NewConflict(conflicts, 2))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
		var detail httperr.ConflictDetail
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal(conflicts, detail.Conflicts)
		s.Equal(2, detail.Attempted)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps command errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "single slot conflict", err: errs.NewConflict([]errs.SlotConflict{{Reason: errs.ConflictReasonHeld}}, 1), expectedStatus: http.StatusConflict, expectedMsg: "Slot is no longer available"},
			{name: "store unavailable", err: errs.NewStoreUnavailable("postgres", "commit", errors.New("conn reset")), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "temporarily unavailable"},
			{name: "unpriced slot", err: errs.NewValidation("items", "slot has no price"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "key reused with a different body", err: commands.ErrDuplicateRequest, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "different request"},
			{name: "key still processing", err: commands.ErrRequestInProgress, expectedStatus: http.StatusConflict, expectedMsg: "still in progress"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitCheckout(gomock.Any(), s.actor, gomock.Any(), key).Return(nil, tc.err)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
