package response

import (
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingItemResponse struct {
	CourtID    uuid.UUID  `json:"courtId"`
	CourtName  string     `json:"courtName"`
	Date       string     `json:"date"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Price      float64    `json:"price"`
	PriceMinor int64      `json:"priceMinor"`
	ReleasedAt *time.Time `json:"releasedAt,omitempty"`
}

type ParticipantResponse struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	SportType string `json:"sportType,omitempty"`
	Age       *int   `json:"age,omitempty"`
	IsBooker  bool   `json:"isBooker"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	BookingNumber string                `json:"bookingNumber"`
	CustomerID    uuid.UUID             `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	CustomerEmail string                `json:"customerEmail,omitempty"`
	Status        string                `json:"status"`
	Total         float64               `json:"total"`
	TotalMinor    int64                 `json:"totalMinor"`
	Note          string                `json:"note,omitempty"`
	Items         []BookingItemResponse `json:"items"`
	Participants  []ParticipantResponse `json:"participants"`
	ConfirmedAt   *time.Time            `json:"confirmedAt,omitempty"`
	CancelledAt   *time.Time            `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// FromBookingView copies same-named fields and derives the major-unit amounts.
func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	resp.Total = float64(v.TotalMinor) / 100
	for i := range resp.Items {
		resp.Items[i].Price = float64(resp.Items[i].PriceMinor) / 100
	}
	if resp.Items == nil {
		resp.Items = []BookingItemResponse{}
	}
	if resp.Participants == nil {
		resp.Participants = []ParticipantResponse{}
	}
	return resp, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
