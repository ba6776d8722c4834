package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	result := dto.ToTicketDTO(t)
	return &result, nil
}
