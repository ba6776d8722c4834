package dto

import (
	"time"

	"chamados/internal/domain/ticket"
)

// TicketDTO is the read model returned to the HTTP layer.
type TicketDTO struct {
	ID               uint        `json:"id"`
	Number           *int        `json:"number,omitempty"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Type             string      `json:"type"`
	Priority         string      `json:"priority"`
	Status           string      `json:"status"`
	Stage            string      `json:"stage"`
	Position         *int        `json:"position,omitempty"`
	URL              string      `json:"url,omitempty"`
	RegistrationDate *time.Time  `json:"registration_date,omitempty"`
	Creator          *UserRefDTO `json:"creator,omitempty"`
	Assignee         *UserRefDTO `json:"assignee,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type UserRefDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:               t.ID(),
		Number:           t.Number(),
		Title:            t.Title(),
		Description:      t.Description(),
		Type:             t.Type().String(),
		Priority:         t.Priority().String(),
		Status:           t.Status().String(),
		Stage:            t.Stage().String(),
		Position:         t.Position(),
		URL:              t.URL(),
		RegistrationDate: t.RegistrationDate(),
		Creator:          toUserRefDTO(t.Creator()),
		Assignee:         toUserRefDTO(t.Assignee()),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	items := make([]TicketDTO, len(tickets))
	for i, t := range tickets {
		items[i] = ToTicketDTO(t)
	}
	return items
}

func toUserRefDTO(ref *ticket.UserRef) *UserRefDTO {
	if ref == nil {
		return nil
	}
	return &UserRefDTO{
		ID:     ref.ID,
		Name:   ref.Name,
		Email:  ref.Email,
		Avatar: ref.Avatar,
	}
}
