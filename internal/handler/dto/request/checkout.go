package request

import (
	"strings"

	"court-booking/internal/usecase/commands"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,max=20"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
}

type ParticipantRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	SportType string `json:"sportType" binding:"omitempty,max=50"`
	Age       *int   `json:"age,omitempty" binding:"omitempty,min=1,max=120"`
	IsBooker  bool   `json:"isBooker"`
}

type CheckoutRequest struct {
	Items        []SlotRequest        `json:"items" binding:"required,min=1,dive"`
	Customer     CustomerRequest      `json:"customer" binding:"required"`
	Participants []ParticipantRequest `json:"participants" binding:"omitempty,dive"`
	Note         string               `json:"note" binding:"max=500"`
}

func (r CheckoutRequest) ToInput() (commands.CheckoutInput, error) {
	ids, err := toIdentities(r.Items)
	if err != nil {
		return commands.CheckoutInput{}, err
	}

	participants := make([]commands.ParticipantInput, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = commands.ParticipantInput{
			Name:      strings.TrimSpace(p.Name),
			Phone:     strings.TrimSpace(p.Phone),
			SportType: strings.TrimSpace(p.SportType),
			Age:       p.Age,
			IsBooker:  p.IsBooker,
		}
	}

	return commands.CheckoutInput{
		Items: ids,
		Customer: commands.CustomerInput{
			Name:  strings.TrimSpace(r.Customer.Name),
			Phone: strings.TrimSpace(r.Customer.Phone),
			Email: strings.TrimSpace(r.Customer.Email),
		},
		Participants: participants,
		Note:         strings.TrimSpace(r.Note),
	}, nil
}
