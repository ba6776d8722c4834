package dto

import (
	"time"

	"chamados/internal/domain/report"
)

// ReportDTO is the read model for a stored period report.
type ReportDTO struct {
	ID        uint           `json:"id"`
	Kind      string         `json:"kind"`
	PeriodKey string         `json:"period_key"`
	Payload   report.Payload `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func ToReportDTO(r *report.Report) ReportDTO {
	return ReportDTO{
		ID:        r.ID(),
		Kind:      r.Kind().String(),
		PeriodKey: r.PeriodKey(),
		Payload:   r.Payload(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func ToReportDTOs(reports []*report.Report) []ReportDTO {
	items := make([]ReportDTO, len(reports))
	for i, r := range reports {
		items[i] = ToReportDTO(r)
	}
	return items
}
