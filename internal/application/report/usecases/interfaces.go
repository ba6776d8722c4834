package usecases

import (
	"context"

	"chamados/internal/application/report/dto"
	"chamados/internal/domain/report"
)

type UpsertReportExecutor interface {
	Execute(ctx context.Context, cmd UpsertReportCommand) (*dto.ReportDTO, error)
}

type GetReportExecutor interface {
	Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error)
}

type DeleteReportExecutor interface {
	Execute(ctx context.Context, cmd DeleteReportCommand) error
}

type SaveCachedReportExecutor interface {
	Execute(ctx context.Context, cmd SaveCachedReportCommand) error
}

type SyncReportsExecutor interface {
	Execute(ctx context.Context, cmd SyncReportsCommand) (*SyncReportsResult, error)
}

// Cache is the local, non-authoritative side of report storage. Payloads
// written here (offline-first drafts) are reconciled into the repository
// by the sync use case.
type Cache interface {
	LoadAll(ctx context.Context, kind report.Kind) (map[string]report.Payload, error)
	Put(ctx context.Context, kind report.Kind, periodKey string, payload report.Payload) error
	Remove(ctx context.Context, kind report.Kind, periodKey string) error
}
