package mappers

import (
	"time"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and persistence models.
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:               entity.ID(),
		Number:           entity.Number(),
		Title:            entity.Title(),
		Description:      entity.Description(),
		Type:             entity.Type().String(),
		Priority:         entity.Priority().String(),
		Status:           entity.Status().String(),
		Stage:            entity.Stage().String(),
		Position:         entity.Position(),
		URL:              entity.URL(),
		RegistrationDate: timeToMilli(entity.RegistrationDate()),
		CreatedAt:        entity.CreatedAt().UnixMilli(),
		UpdatedAt:        entity.UpdatedAt().UnixMilli(),
	}

	if creator := entity.Creator(); creator != nil {
		id := creator.ID
		model.CreatorID = &id
		model.CreatorName = creator.Name
		model.CreatorEmail = creator.Email
		model.CreatorAvatar = creator.Avatar
	}
	if assignee := entity.Assignee(); assignee != nil {
		id := assignee.ID
		model.AssigneeID = &id
		model.AssigneeName = assignee.Name
		model.AssigneeEmail = assignee.Email
		model.AssigneeAvatar = assignee.Avatar
	}

	return model
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var creator *ticket.UserRef
	if model.CreatorID != nil {
		creator = &ticket.UserRef{
			ID:     *model.CreatorID,
			Name:   model.CreatorName,
			Email:  model.CreatorEmail,
			Avatar: model.CreatorAvatar,
		}
	}

	var assignee *ticket.UserRef
	if model.AssigneeID != nil {
		assignee = &ticket.UserRef{
			ID:     *model.AssigneeID,
			Name:   model.AssigneeName,
			Email:  model.AssigneeEmail,
			Avatar: model.AssigneeAvatar,
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		vo.TicketType(model.Type),
		vo.Priority(model.Priority),
		vo.Status(model.Status),
		vo.Stage(model.Stage),
		model.Position,
		model.URL,
		milliToTime(model.RegistrationDate),
		creator,
		assignee,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapper) ToDomainList(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func timeToMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func milliToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
