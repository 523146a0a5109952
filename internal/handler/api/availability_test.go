//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/httptest"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	userID      uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/availability", optionalAuth(s.userID, user.RoleCustomer), h.Get)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func sampleAvailability(lock queries.LockMark) *queries.AvailabilityView {
	return &queries.AvailabilityView{
		Date: slot.MustParseDate("2025-06-01"),
		Courts: []queries.CourtAvailability{
			{
				CourtID:   uuid.MustParse("6f1c3c1e-8a4e-4f43-9d7b-0f3f4b8c2a11"),
				CourtName: "Court A",
				Slots: []queries.SlotView{
					{Start: slot.MustParseClockTime("18:00"), End: slot.MustParseClockTime("19:00"), Price: booking.MustMoney(50000), Priced: true, Status: queries.SlotAvailable, Lock: lock},
					{Start: slot.MustParseClockTime("19:00"), End: slot.MustParseClockTime("20:00"), Price: booking.MustMoney(50000), Priced: true, Status: queries.SlotBooked},
					{Start: slot.MustParseClockTime("23:00"), End: slot.MustParseClockTime("00:00"), Status: queries.SlotAvailable},
				},
			},
			{
				CourtID:      uuid.MustParse("0c9d2b7a-3f1e-4a55-8c6d-2e4b9a7f1d22"),
				CourtName:    "Court B",
				Closed:       true,
				ClosedReason: "maintenance",
			},
		},
	}
}

func (s *AvailabilityHandlerTestSuite) TestGet() {
	date := slot.MustParseDate("2025-06-01")

	s.Run("success: anonymous caller gets the plain grid", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), date).Return(sampleAvailability(queries.LockNone), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2025-06-01", nil, "")

		var body []resdto.CourtAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Court A", body[0].CourtName)
		s.Require().Len(body[0].Slots, 3)
		s.Equal("18:00", body[0].Slots[0].StartTime)
		s.Require().NotNil(body[0].Slots[0].Price)
		s.InDelta(500.0, *body[0].Slots[0].Price, 0.001)
		s.Equal("booked", body[0].Slots[1].Status)
		s.Nil(body[0].Slots[2].Price, "unpriced slot renders null")
		s.False(body[0].Slots[2].Priced)
		s.True(body[1].Closed)
		s.Empty(body[1].Slots)
	})

	s.Run("success: authenticated caller gets lock overlay for their holder id", func() {
		s.mockQueries.EXPECT().GetAvailabilityFor(gomock.Any(), date, s.userID.String()).
			Return(sampleAvailability(queries.LockSelf), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2025-06-01", nil, bearer)

		var body []resdto.CourtAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("self", body[0].Slots[0].Lock)
	})

	s.Run("error: 400 on missing or malformed date", func() {
		for _, path := range []string{"/availability", "/availability?date=01-06-2025", "/availability?date=2025-02-30"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: maps query errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "database down", err: errs.NewStoreUnavailable("postgres", "availability", errors.New("conn refused")), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "temporarily unavailable"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetAvailability(gomock.Any(), date).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2025-06-01", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 503 carries Retry-After", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), date).
			Return(nil, errs.NewStoreUnavailable("postgres", "availability", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2025-06-01", nil, "")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})
}
