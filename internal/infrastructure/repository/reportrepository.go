package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chamados/internal/domain/report"
	"chamados/internal/infrastructure/persistence/mappers"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/errors"
)

type ReportRepository struct {
	db     *gorm.DB
	mapper *mappers.ReportMapper
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:     db,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepository) ListAll(ctx context.Context, kind report.Kind) ([]*report.Report, error) {
	var reportModels []*models.ReportModel

	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind.String()).
		Order("period_key DESC").
		Find(&reportModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return r.mapper.ToDomainList(reportModels)
}

func (r *ReportRepository) GetByKey(ctx context.Context, kind report.Kind, periodKey string) (*report.Report, error) {
	var model models.ReportModel

	if err := r.db.WithContext(ctx).
		Where("kind = ? AND period_key = ?", kind.String(), periodKey).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("report not found", fmt.Sprintf("%s/%s", kind, periodKey))
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Upsert inserts the report or replaces the payload of the row that already
// holds the same kind and period key. The last save wins.
func (r *ReportRepository) Upsert(ctx context.Context, rep *report.Report) error {
	model, err := r.mapper.ToModel(rep)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "period_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert report: %w", result.Error)
	}

	if rep.ID() == 0 && model.ID != 0 {
		if err := rep.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, kind report.Kind, periodKey string) error {
	result := r.db.WithContext(ctx).
		Where("kind = ? AND period_key = ?", kind.String(), periodKey).
		Delete(&models.ReportModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("report not found", fmt.Sprintf("%s/%s", kind, periodKey))
	}
	return nil
}
