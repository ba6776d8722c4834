package usecases

import (
	"context"

	"chamados/internal/domain/ticket"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// TicketStatsResult holds the counters the dashboard polls for its live
// badges.
type TicketStatsResult struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	ByStage  map[string]int64 `json:"by_stage"`
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*TicketStatsResult, error) {
	stats, err := uc.ticketRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, errors.NewInternalError("failed to load ticket stats")
	}

	result := &TicketStatsResult{
		Total:    stats.Total,
		ByStatus: make(map[string]int64, len(stats.ByStatus)),
		ByStage:  make(map[string]int64, len(stats.ByStage)),
	}
	for status, count := range stats.ByStatus {
		result.ByStatus[status.String()] = count
	}
	for stage, count := range stats.ByStage {
		result.ByStage[stage.String()] = count
	}

	return result, nil
}
