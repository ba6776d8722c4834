package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title            string
	Description      string
	Type             string
	Priority         string
	Number           string // free-text ticket number, parsed to int
	URL              string
	RegistrationDate *time.Time
	Creator          *ticket.UserRef
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	number, err := parseTicketNumber(cmd.Number)
	if err != nil {
		return nil, err
	}

	if cmd.Type != "" {
		if _, err := vo.NewTicketType(cmd.Type); err != nil {
			return nil, errors.NewValidationError("invalid ticket type", cmd.Type)
		}
	}
	if cmd.Priority != "" {
		if _, err := vo.NewPriority(cmd.Priority); err != nil {
			return nil, errors.NewValidationError("invalid priority", cmd.Priority)
		}
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.TicketType(cmd.Type),
		vo.Priority(cmd.Priority),
		number,
		cmd.URL,
		cmd.RegistrationDate,
		cmd.Creator,
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	result := dto.ToTicketDTO(newTicket)
	return &result, nil
}

// parseTicketNumber parses a free-text ticket number. Empty input means no
// number; non-numeric input is rejected rather than silently nulled.
func parseTicketNumber(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError("ticket number must be numeric", raw)
	}
	if n <= 0 {
		return nil, errors.NewValidationError("ticket number must be a positive integer", raw)
	}
	return &n, nil
}
