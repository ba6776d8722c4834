package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
)

func payloadNamed(label string) report.Payload {
	return report.Payload{
		Label:   label,
		Summary: report.Summary{Total: 1, Abertos: 1},
	}
}

func storedReport(t *testing.T, kind report.Kind, key, label string) *report.Report {
	t.Helper()
	r, err := report.NewReport(kind, key, payloadNamed(label))
	require.NoError(t, err)
	return r
}

func TestSyncReports_StoreWinsAndLocalOnlyIsPushed(t *testing.T) {
	cache := &mockCache{
		LoadAllFunc: func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
			return map[string]report.Payload{
				"2026-W01": payloadNamed("local A"),
				"2026-W02": payloadNamed("local B"),
			}, nil
		},
	}

	var pushed []string
	repo := &mockReportRepository{
		ListAllFunc: func(ctx context.Context, kind report.Kind) ([]*report.Report, error) {
			return []*report.Report{
				storedReport(t, kind, "2026-W01", "remote A"),
			}, nil
		},
		UpsertFunc: func(ctx context.Context, r *report.Report) error {
			pushed = append(pushed, r.PeriodKey())
			return nil
		},
	}

	uc := NewSyncReportsUseCase(repo, cache, noopLogger{})

	result, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "weekly"})
	require.NoError(t, err)

	// The store wins on the shared key; the cache-only key survives.
	assert.Equal(t, "remote A", result.Reports["2026-W01"].Label)
	assert.Equal(t, "local B", result.Reports["2026-W02"].Label)
	assert.Len(t, result.Reports, 2)

	// Only the cache-only entry is written back.
	assert.Equal(t, []string{"2026-W02"}, pushed)
	assert.Equal(t, []string{"2026-W02"}, result.PushedKeys)
	assert.False(t, result.Degraded)
}

func TestSyncReports_StoreOutageDegradesToCache(t *testing.T) {
	cache := &mockCache{
		LoadAllFunc: func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
			return map[string]report.Payload{
				"2026-03": payloadNamed("local"),
			}, nil
		},
	}
	repo := &mockReportRepository{
		ListAllFunc: func(ctx context.Context, kind report.Kind) ([]*report.Report, error) {
			return nil, errors.NewInternalError("store unreachable")
		},
	}

	uc := NewSyncReportsUseCase(repo, cache, noopLogger{})

	result, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "monthly"})
	require.NoError(t, err)

	// The cached data comes back untouched and the outage is flagged.
	assert.True(t, result.Degraded)
	assert.Equal(t, "local", result.Reports["2026-03"].Label)
	assert.Len(t, result.Reports, 1)
	assert.Empty(t, result.PushedKeys)
}

func TestSyncReports_PushFailureIsSwallowed(t *testing.T) {
	cache := &mockCache{
		LoadAllFunc: func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
			return map[string]report.Payload{
				"2026-Q1": payloadNamed("ok"),
				"2026-Q2": payloadNamed("falha"),
			}, nil
		},
	}
	repo := &mockReportRepository{
		ListAllFunc: func(ctx context.Context, kind report.Kind) ([]*report.Report, error) {
			return nil, nil
		},
		UpsertFunc: func(ctx context.Context, r *report.Report) error {
			if r.PeriodKey() == "2026-Q2" {
				return errors.NewInternalError("write failed")
			}
			return nil
		},
	}

	uc := NewSyncReportsUseCase(repo, cache, noopLogger{})

	result, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "quarterly"})
	require.NoError(t, err)

	// The failed push is logged and skipped; the merged view still holds both.
	assert.Equal(t, []string{"2026-Q1"}, result.PushedKeys)
	assert.Len(t, result.Reports, 2)
	assert.False(t, result.Degraded)
}

func TestSyncReports_InvalidCachedEntryIsSkipped(t *testing.T) {
	cache := &mockCache{
		LoadAllFunc: func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
			return map[string]report.Payload{
				"not-a-key": payloadNamed("corrompido"),
				"2026-W10":  payloadNamed("valido"),
			}, nil
		},
	}
	var pushed []string
	repo := &mockReportRepository{
		UpsertFunc: func(ctx context.Context, r *report.Report) error {
			pushed = append(pushed, r.PeriodKey())
			return nil
		},
	}

	uc := NewSyncReportsUseCase(repo, cache, noopLogger{})

	result, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "weekly"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-W10"}, pushed)
	assert.Equal(t, []string{"2026-W10"}, result.PushedKeys)
}

func TestSyncReports_CacheFailureFailsTheSync(t *testing.T) {
	cache := &mockCache{
		LoadAllFunc: func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
			return nil, errors.NewInternalError("redis down")
		},
	}

	uc := NewSyncReportsUseCase(&mockReportRepository{}, cache, noopLogger{})

	_, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "weekly"})
	assert.Error(t, err)
}

func TestSyncReports_InvalidKind(t *testing.T) {
	uc := NewSyncReportsUseCase(&mockReportRepository{}, &mockCache{}, noopLogger{})

	_, err := uc.Execute(context.Background(), SyncReportsCommand{Kind: "daily"})
	assert.True(t, errors.IsValidationError(err))
}
