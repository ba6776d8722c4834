package usecases

import (
	"context"
	"sort"

	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type SyncReportsCommand struct {
	Kind string
}

// SyncReportsResult is the merged view of local and remote report data.
// Degraded is set when the authoritative store could not be read and the
// result is the local cache as-is; PushedKeys lists the local-only entries
// that were written back successfully.
type SyncReportsResult struct {
	Reports    map[string]report.Payload `json:"reports"`
	PushedKeys []string                  `json:"pushed_keys"`
	Degraded   bool                      `json:"degraded"`
}

// SyncReportsUseCase reconciles the local report cache with the
// authoritative store. The store wins on conflicting keys; cache-only
// entries are pushed back best-effort. Sync never fails the caller over a
// store outage: it degrades to the cached data instead.
type SyncReportsUseCase struct {
	reportRepo report.Repository
	cache      Cache
	logger     logger.Interface
}

func NewSyncReportsUseCase(reportRepo report.Repository, cache Cache, logger logger.Interface) *SyncReportsUseCase {
	return &SyncReportsUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *SyncReportsUseCase) Execute(ctx context.Context, cmd SyncReportsCommand) (*SyncReportsResult, error) {
	kind, err := report.NewKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError("invalid report kind", cmd.Kind)
	}

	local, err := uc.cache.LoadAll(ctx, kind)
	if err != nil {
		uc.logger.Errorw("failed to load report cache", "kind", cmd.Kind, "error", err)
		return nil, errors.NewInternalError("failed to load report cache")
	}

	merged := make(map[string]report.Payload, len(local))
	for key, payload := range local {
		merged[key] = payload
	}

	remoteReports, err := uc.reportRepo.ListAll(ctx, kind)
	if err != nil {
		// Best-effort: a store outage degrades to the cached data, it
		// never fails the sync.
		uc.logger.Warnw("report store unavailable, returning cached data",
			"kind", cmd.Kind,
			"error", err)
		return &SyncReportsResult{Reports: merged, Degraded: true}, nil
	}

	remote := make(map[string]report.Payload, len(remoteReports))
	for _, r := range remoteReports {
		remote[r.PeriodKey()] = r.Payload()
	}

	// The store wins on every key it knows; no field-level merge.
	for key, payload := range remote {
		merged[key] = payload
	}

	localOnly := make([]string, 0)
	for key := range local {
		if _, ok := remote[key]; !ok {
			localOnly = append(localOnly, key)
		}
	}
	sort.Strings(localOnly)

	pushed := make([]string, 0, len(localOnly))
	for _, key := range localOnly {
		r, err := report.NewReport(kind, key, local[key])
		if err != nil {
			uc.logger.Warnw("skipping invalid cached report",
				"kind", cmd.Kind,
				"period_key", key,
				"error", err)
			continue
		}
		// Writeback is fire-and-forget: a failed push is logged and the
		// entry stays local-only until the next sync.
		if err := uc.reportRepo.Upsert(ctx, r); err != nil {
			uc.logger.Warnw("failed to push cached report",
				"kind", cmd.Kind,
				"period_key", key,
				"error", err)
			continue
		}
		pushed = append(pushed, key)
	}

	uc.logger.Infow("reports synced",
		"kind", cmd.Kind,
		"merged", len(merged),
		"pushed", len(pushed))

	return &SyncReportsResult{Reports: merged, PushedKeys: pushed}, nil
}
