package usecases

import (
	"context"

	"chamados/internal/application/report/dto"
	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type ListReportsQuery struct {
	Kind string
}

type ListReportsResult struct {
	Reports []dto.ReportDTO
}

type ListReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error) {
	kind, err := report.NewKind(query.Kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid report kind", query.Kind)
	}

	reports, err := uc.reportRepo.ListAll(ctx, kind)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "kind", query.Kind, "error", err)
		return nil, errors.NewInternalError("failed to list reports")
	}

	return &ListReportsResult{Reports: dto.ToReportDTOs(reports)}, nil
}
