package usecases

import (
	"context"

	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// SaveCachedReportCommand stores a draft payload in the local cache
// without touching the authoritative store. The sync use case pushes it
// there later.
type SaveCachedReportCommand struct {
	Kind      string
	PeriodKey string
	Payload   report.Payload
}

type SaveCachedReportUseCase struct {
	cache  Cache
	logger logger.Interface
}

func NewSaveCachedReportUseCase(cache Cache, logger logger.Interface) *SaveCachedReportUseCase {
	return &SaveCachedReportUseCase{
		cache:  cache,
		logger: logger,
	}
}

func (uc *SaveCachedReportUseCase) Execute(ctx context.Context, cmd SaveCachedReportCommand) error {
	kind, err := report.NewKind(cmd.Kind)
	if err != nil {
		return errors.NewValidationError("invalid report kind", cmd.Kind)
	}
	if err := kind.ValidateKey(cmd.PeriodKey); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := cmd.Payload.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.cache.Put(ctx, kind, cmd.PeriodKey, cmd.Payload); err != nil {
		uc.logger.Errorw("failed to cache report draft",
			"kind", cmd.Kind,
			"period_key", cmd.PeriodKey,
			"error", err)
		return errors.NewInternalError("failed to cache report draft")
	}

	uc.logger.Infow("report draft cached", "kind", cmd.Kind, "period_key", cmd.PeriodKey)
	return nil
}
