package report

import "context"

type Repository interface {
	// ListAll returns every report of the kind ordered by period key
	// descending.
	ListAll(ctx context.Context, kind Kind) ([]*Report, error)
	GetByKey(ctx context.Context, kind Kind, periodKey string) (*Report, error)
	// Upsert creates the report when its (kind, period key) is unseen and
	// replaces the payload wholesale otherwise.
	Upsert(ctx context.Context, r *Report) error
	Delete(ctx context.Context, kind Kind, periodKey string) error
}
