package usecases

import (
	"context"

	"chamados/internal/application/report/dto"
	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type GetReportQuery struct {
	Kind      string
	PeriodKey string
}

type GetReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewGetReportUseCase(reportRepo report.Repository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error) {
	kind, err := report.NewKind(query.Kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid report kind", query.Kind)
	}

	r, err := uc.reportRepo.GetByKey(ctx, kind, query.PeriodKey)
	if err != nil {
		uc.logger.Warnw("failed to get report",
			"kind", query.Kind,
			"period_key", query.PeriodKey,
			"error", err)
		return nil, err
	}

	result := dto.ToReportDTO(r)
	return &result, nil
}
