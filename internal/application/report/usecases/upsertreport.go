package usecases

import (
	"context"

	"chamados/internal/application/report/dto"
	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type UpsertReportCommand struct {
	Kind      string
	PeriodKey string
	Payload   report.Payload
}

type UpsertReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewUpsertReportUseCase(reportRepo report.Repository, logger logger.Interface) *UpsertReportUseCase {
	return &UpsertReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *UpsertReportUseCase) Execute(ctx context.Context, cmd UpsertReportCommand) (*dto.ReportDTO, error) {
	kind, err := report.NewKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid report kind", cmd.Kind)
	}

	r, err := report.NewReport(kind, cmd.PeriodKey, cmd.Payload)
	if err != nil {
		uc.logger.Warnw("invalid upsert report command",
			"kind", cmd.Kind,
			"period_key", cmd.PeriodKey,
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reportRepo.Upsert(ctx, r); err != nil {
		uc.logger.Errorw("failed to upsert report",
			"kind", cmd.Kind,
			"period_key", cmd.PeriodKey,
			"error", err)
		return nil, err
	}

	uc.logger.Infow("report saved", "kind", cmd.Kind, "period_key", cmd.PeriodKey)

	result := dto.ToReportDTO(r)
	return &result, nil
}
