package usecases

import (
	"context"
	"time"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update: nil fields are left
// untouched.
type UpdateTicketCommand struct {
	TicketID         uint
	Title            *string
	Description      *string
	Status           *string
	Priority         *string
	Type             *string
	Number           *string // free-text; empty string clears the number
	URL              *string
	RegistrationDate *time.Time
	Assignee         *ticket.UserRef
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(t, cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	result := dto.ToTicketDTO(t)
	return &result, nil
}

func (uc *UpdateTicketUseCase) apply(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError("invalid status", *cmd.Status)
		}
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return errors.NewValidationError("invalid priority", *cmd.Priority)
		}
		if err := t.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Type != nil {
		ticketType, err := vo.NewTicketType(*cmd.Type)
		if err != nil {
			return errors.NewValidationError("invalid ticket type", *cmd.Type)
		}
		if err := t.ChangeType(ticketType); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Number != nil {
		number, err := parseTicketNumber(*cmd.Number)
		if err != nil {
			return err
		}
		if err := t.SetNumber(number); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.URL != nil {
		t.SetURL(*cmd.URL)
	}
	if cmd.RegistrationDate != nil {
		t.SetRegistrationDate(*cmd.RegistrationDate)
	}
	if cmd.Assignee != nil {
		t.Assign(cmd.Assignee)
	}
	return nil
}
