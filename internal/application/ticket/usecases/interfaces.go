package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type MoveTicketExecutor interface {
	Execute(ctx context.Context, cmd MoveTicketCommand) (*dto.TicketDTO, error)
}

type GetBoardExecutor interface {
	Execute(ctx context.Context, query GetBoardQuery) (*BoardResult, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*TicketStatsResult, error)
}
