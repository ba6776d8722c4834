package usecases

import (
	"context"

	"chamados/internal/domain/report"
	"chamados/internal/shared/logger"
)

type mockReportRepository struct {
	ListAllFunc  func(ctx context.Context, kind report.Kind) ([]*report.Report, error)
	GetByKeyFunc func(ctx context.Context, kind report.Kind, periodKey string) (*report.Report, error)
	UpsertFunc   func(ctx context.Context, r *report.Report) error
	DeleteFunc   func(ctx context.Context, kind report.Kind, periodKey string) error
}

func (m *mockReportRepository) ListAll(ctx context.Context, kind report.Kind) ([]*report.Report, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockReportRepository) GetByKey(ctx context.Context, kind report.Kind, periodKey string) (*report.Report, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, kind, periodKey)
	}
	return nil, nil
}

func (m *mockReportRepository) Upsert(ctx context.Context, r *report.Report) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Delete(ctx context.Context, kind report.Kind, periodKey string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, periodKey)
	}
	return nil
}

type mockCache struct {
	LoadAllFunc func(ctx context.Context, kind report.Kind) (map[string]report.Payload, error)
	PutFunc     func(ctx context.Context, kind report.Kind, periodKey string, payload report.Payload) error
	RemoveFunc  func(ctx context.Context, kind report.Kind, periodKey string) error
}

func (m *mockCache) LoadAll(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
	if m.LoadAllFunc != nil {
		return m.LoadAllFunc(ctx, kind)
	}
	return map[string]report.Payload{}, nil
}

func (m *mockCache) Put(ctx context.Context, kind report.Kind, periodKey string, payload report.Payload) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, kind, periodKey, payload)
	}
	return nil
}

func (m *mockCache) Remove(ctx context.Context, kind report.Kind, periodKey string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, kind, periodKey)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
