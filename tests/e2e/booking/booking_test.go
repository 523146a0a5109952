//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingE2ETestSuite struct {
	e2e.SharedSuite
	tokens *authtest.JWTHelper
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

func (s *BookingE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.JWT)
}

type bookingFixture struct {
	courtID uuid.UUID
	date    string
	u1      string
	u2      string
	staff   string
}

func (s *BookingE2ETestSuite) seed() bookingFixture {
	courtID := dbtest.CreateCourt(s.T(), s.DB, "Court A", "08:00", "00:00")
	dbtest.CreatePricingRule(s.T(), s.DB, courtID, "08:00", "00:00", 30000, 0)
	dbtest.CreatePricingRule(s.T(), s.DB, courtID, "18:00", "00:00", 50000, 10)

	loc, err := s.Config.Booking.Location()
	s.Require().NoError(err)

	_, u1 := s.tokens.Customer(s.T())
	_, u2 := s.tokens.Customer(s.T())

	return bookingFixture{
		courtID: courtID,
		date:    time.Now().In(loc).AddDate(0, 0, 7).Format("2006-01-02"),
		u1:      u1,
		u2:      u2,
		staff:   s.tokens.Staff(s.T()),
	}
}

func (s *BookingE2ETestSuite) availability(f bookingFixture, token string) resdto.SlotResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?date="+f.date, nil, token)
	var body []resdto.CourtAvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	for _, sl := range body[0].Slots {
		if sl.StartTime == "18:00" {
			return sl
		}
	}
	s.FailNow("18:00 slot missing from grid")
	return resdto.SlotResponse{}
}

func (s *BookingE2ETestSuite) checkout(f bookingFixture, token string, key uuid.UUID, starts ...string) *nethttptest.ResponseRecorder {
	req := builder.NewCheckoutBuilder().WithCourt(f.courtID).WithDate(f.date).WithStartTimes(starts...).BuildRequest()
	return httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/checkout", req,
		map[string]string{"Idempotency-Key": key.String()}, token)
}

func (s *BookingE2ETestSuite) reserve(f bookingFixture, token string, starts ...string) resdto.ReserveResponse {
	req := builder.NewCheckoutBuilder().WithCourt(f.courtID).WithDate(f.date).WithStartTimes(starts...).BuildReserveRequest()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/locks", req, token)
	var body resdto.ReserveResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *BookingE2ETestSuite) TestTwoCustomersContendForOneSlot() {
	f := s.seed()

	// grid before anyone acts
	slot := s.availability(f, "")
	s.Equal("available", slot.Status)
	s.Require().NotNil(slot.Price)
	s.InDelta(500.0, *slot.Price, 0.001, "higher priority evening rule wins")

	// u1 locks 18:00
	res := s.reserve(f, f.u1, "18:00")
	s.Require().Len(res.Items, 1)
	s.True(res.Items[0].Locked)

	// u2 is refused and sees it as held by someone else
	res = s.reserve(f, f.u2, "18:00")
	s.False(res.Items[0].Locked)
	s.Equal("held", res.Items[0].Reason)
	s.Equal("other", s.availability(f, f.u2).Lock)
	s.Equal("self", s.availability(f, f.u1).Lock)

	// u1 checks out
	rec := s.checkout(f, f.u1, uuid.New(), "18:00")
	var booked resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
	s.Equal("PENDING", booked.Status)
	s.Equal(int64(50000), booked.TotalMinor)
	s.Equal(1, dbtest.CountActiveItems(s.T(), s.DB, f.courtID, f.date))

	// the slot is booked and u1's lock is gone
	slot = s.availability(f, f.u2)
	s.Equal("booked", slot.Status)
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/cart/locks", nil, f.u1)
	s.JSONEq(`[]`, rec.Body.String())

	// u2 cannot book it directly
	rec = s.checkout(f, f.u2, uuid.New(), "18:00")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	var detail httperr.ConflictDetail
	httptest.DecodeErrorDetail(s.T(), rec, &detail)
	s.Require().Len(detail.Conflicts, 1)
	s.Equal("booked", detail.Conflicts[0].Reason)
}

func (s *BookingE2ETestSuite) TestExpiredLockCanBeTakenOver() {
	f := s.seed()

	s.True(s.reserve(f, f.u1, "18:00").Items[0].Locked)
	s.False(s.reserve(f, f.u2, "18:00").Items[0].Locked)

	time.Sleep(s.Config.Lock.TTL + 200*time.Millisecond)

	s.Equal("", s.availability(f, f.u2).Lock)
	s.True(s.reserve(f, f.u2, "18:00").Items[0].Locked)

	// u1's stale cart can no longer check out
	rec := s.checkout(f, f.u1, uuid.New(), "18:00")
	httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeSlotConflict)
	s.Equal(0, dbtest.CountActiveItems(s.T(), s.DB, f.courtID, f.date))
}

func (s *BookingE2ETestSuite) TestMultiSlotCartIsAllOrNothing() {
	f := s.seed()

	rec := s.checkout(f, f.u2, uuid.New(), "20:00")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	rec = s.checkout(f, f.u1, uuid.New(), "18:00", "19:00", "20:00")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "One or more slots")
	var detail httperr.ConflictDetail
	httptest.DecodeErrorDetail(s.T(), rec, &detail)
	s.Equal(3, detail.Attempted)
	s.Require().Len(detail.Conflicts, 1)
	s.Equal("20:00", detail.Conflicts[0].StartTime)

	s.Equal(1, dbtest.CountActiveItems(s.T(), s.DB, f.courtID, f.date), "no partial booking is written")
}

func (s *BookingE2ETestSuite) TestIdempotentCheckout() {
	f := s.seed()
	key := uuid.New()

	rec := s.checkout(f, f.u1, key, "18:00")
	var first resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)

	rec = s.checkout(f, f.u1, key, "18:00")
	var replay resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
	s.Equal(first.ID, replay.ID)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})

	rec = s.checkout(f, f.u1, key, "19:00")
	httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, httperr.CodeIdempotencyReused)
	s.Equal(1, dbtest.CountActiveItems(s.T(), s.DB, f.courtID, f.date))
}

func (s *BookingE2ETestSuite) TestCancelAndConfirmLifecycle() {
	f := s.seed()

	rec := s.checkout(f, f.u1, uuid.New(), "18:00")
	var b resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &b)
	bookingURL := "/api/bookings/" + b.ID.String()

	// strangers get 404, customers cannot reach admin routes
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, f.u2)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/bookings/"+b.ID.String()+"/confirm", nil, f.u1)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")

	// staff confirms
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/bookings/"+b.ID.String()+"/confirm", nil, f.staff)
	var confirmed resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmed)
	s.Equal("CONFIRMED", confirmed.Status)

	// owner cancels, the slot opens up again
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingURL+"/cancel", nil, f.u1)
	var cancelled resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
	s.Equal("CANCELLED", cancelled.Status)
	s.Equal("available", s.availability(f, "").Status)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingURL+"/cancel", nil, f.u1)
	httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)

	rec = s.checkout(f, f.u2, uuid.New(), "18:00")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
}

func (s *BookingE2ETestSuite) TestStaffCanInspectAndForceReleaseLocks() {
	f := s.seed()
	lockURL := "/api/admin/locks/" + f.courtID.String() + "/" + f.date + "/18:00"

	s.True(s.reserve(f, f.u1, "18:00").Items[0].Locked)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, lockURL, nil, f.staff)
	var lock resdto.LockResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &lock)
	s.True(lock.Held)
	s.NotEmpty(lock.HolderID)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, lockURL, nil, f.staff)
	s.Equal(http.StatusNoContent, rec.Code)

	s.True(s.reserve(f, f.u2, "18:00").Items[0].Locked)
}
