package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/kanban"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type GetBoardQuery struct {
	Search          string
	Priority        string
	Type            string
	SortKey         string
	SortDir         string
	IncludeArchived bool
}

type BoardColumn struct {
	Stage   string          `json:"stage"`
	Tickets []dto.TicketDTO `json:"tickets"`
}

type BoardResult struct {
	Columns []BoardColumn `json:"columns"`
}

type GetBoardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetBoardUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetBoardUseCase {
	return &GetBoardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetBoardUseCase) Execute(ctx context.Context, query GetBoardQuery) (*BoardResult, error) {
	criteria, err := uc.buildCriteria(query)
	if err != nil {
		return nil, err
	}

	// The board works on the full ticket set; pagination belongs to the
	// flat listing, not the kanban view.
	tickets, _, err := uc.ticketRepo.List(ctx, ticket.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to load tickets for board", "error", err)
		return nil, errors.NewInternalError("failed to load board")
	}

	view := kanban.View(tickets, criteria)

	byStage := make(map[vo.Stage][]*ticket.Ticket)
	for _, t := range view {
		byStage[t.Stage()] = append(byStage[t.Stage()], t)
	}

	columns := make([]BoardColumn, 0, len(vo.AllStages()))
	for _, stage := range vo.AllStages() {
		columns = append(columns, BoardColumn{
			Stage:   stage.String(),
			Tickets: dto.ToTicketDTOs(byStage[stage]),
		})
	}

	return &BoardResult{Columns: columns}, nil
}

func (uc *GetBoardUseCase) buildCriteria(query GetBoardQuery) (kanban.Criteria, error) {
	criteria := kanban.Criteria{
		Search:          query.Search,
		SortKey:         kanban.SortCreatedAt,
		SortDir:         kanban.SortDesc,
		IncludeArchived: query.IncludeArchived,
	}

	if query.Priority != "" && query.Priority != "all" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return kanban.Criteria{}, errors.NewValidationError("invalid priority", query.Priority)
		}
		criteria.Priority = priority
	}
	if query.Type != "" && query.Type != "all" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return kanban.Criteria{}, errors.NewValidationError("invalid ticket type", query.Type)
		}
		criteria.Type = ticketType
	}
	if query.SortKey != "" {
		key := kanban.SortKey(query.SortKey)
		if !key.IsValid() {
			return kanban.Criteria{}, errors.NewValidationError("invalid sort key", query.SortKey)
		}
		criteria.SortKey = key
	}
	if query.SortDir != "" {
		if query.SortDir != string(kanban.SortAsc) && query.SortDir != string(kanban.SortDesc) {
			return kanban.Criteria{}, errors.NewValidationError("invalid sort direction", query.SortDir)
		}
		criteria.SortDir = kanban.SortDir(query.SortDir)
	}

	return criteria, nil
}
