package usecases

import (
	"context"

	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type DeleteReportCommand struct {
	Kind      string
	PeriodKey string
}

type DeleteReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewDeleteReportUseCase(reportRepo report.Repository, logger logger.Interface) *DeleteReportUseCase {
	return &DeleteReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *DeleteReportUseCase) Execute(ctx context.Context, cmd DeleteReportCommand) error {
	kind, err := report.NewKind(cmd.Kind)
	if err != nil {
		return errors.NewValidationError("invalid report kind", cmd.Kind)
	}

	if err := uc.reportRepo.Delete(ctx, kind, cmd.PeriodKey); err != nil {
		uc.logger.Warnw("failed to delete report",
			"kind", cmd.Kind,
			"period_key", cmd.PeriodKey,
			"error", err)
		return err
	}

	uc.logger.Infow("report deleted", "kind", cmd.Kind, "period_key", cmd.PeriodKey)
	return nil
}
