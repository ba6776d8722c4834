package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status    *string
	Priority  *string
	Type      *string
	Stage     *string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets    []dto.TicketDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.PageSize <= 0 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}
	if query.Page < 1 {
		query.Page = 1
	}

	filter := ticket.Filter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	// Default listing order: newest first.
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", *query.Status)
		}
		filter.Status = &status
	}
	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", *query.Priority)
		}
		filter.Priority = &priority
	}
	if query.Type != nil {
		ticketType, err := vo.NewTicketType(*query.Type)
		if err != nil {
			return nil, errors.NewValidationError("invalid ticket type", *query.Type)
		}
		filter.Type = &ticketType
	}
	if query.Stage != nil {
		stage, err := vo.NewStage(*query.Stage)
		if err != nil {
			return nil, errors.NewValidationError("invalid stage", *query.Stage)
		}
		filter.Stage = &stage
	}

	tickets, totalCount, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:    dto.ToTicketDTOs(tickets),
		TotalCount: totalCount,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
