package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// MoveTicketCommand persists a drag-and-drop reorder: the ticket lands in
// the target stage column at the given manual position. A failed update
// leaves the stored order untouched, so the caller can revert its
// optimistic reorder on error.
type MoveTicketCommand struct {
	TicketID uint
	Stage    string
	Position int
}

type MoveTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewMoveTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *MoveTicketUseCase {
	return &MoveTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *MoveTicketUseCase) Execute(ctx context.Context, cmd MoveTicketCommand) (*dto.TicketDTO, error) {
	stage, err := vo.NewStage(cmd.Stage)
	if err != nil {
		return nil, errors.NewValidationError("invalid stage", cmd.Stage)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.MoveTo(stage, cmd.Position); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to move ticket",
			"ticket_id", cmd.TicketID,
			"stage", cmd.Stage,
			"position", cmd.Position,
			"error", err)
		return nil, err
	}

	uc.logger.Infow("ticket moved",
		"ticket_id", t.ID(),
		"stage", stage.String(),
		"position", cmd.Position)

	result := dto.ToTicketDTO(t)
	return &result, nil
}
