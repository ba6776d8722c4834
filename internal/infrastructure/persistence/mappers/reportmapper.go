package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"chamados/internal/domain/report"
	"chamados/internal/infrastructure/persistence/models"
)

// ReportMapper converts between report entities and persistence models.
// The payload travels as a JSON column.
type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToModel(entity *report.Report) (*models.ReportModel, error) {
	payload, err := json.Marshal(entity.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report payload: %w", err)
	}

	return &models.ReportModel{
		ID:        entity.ID(),
		Kind:      entity.Kind().String(),
		PeriodKey: entity.PeriodKey(),
		Payload:   payload,
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *ReportMapper) ToDomain(model *models.ReportModel) (*report.Report, error) {
	var payload report.Payload
	if err := json.Unmarshal(model.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report payload: %w", err)
	}

	return report.ReconstructReport(
		model.ID,
		report.Kind(model.Kind),
		model.PeriodKey,
		payload,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *ReportMapper) ToDomainList(modelList []*models.ReportModel) ([]*report.Report, error) {
	entities := make([]*report.Report, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
