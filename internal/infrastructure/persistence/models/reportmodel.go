package models

import "gorm.io/datatypes"

type ReportModel struct {
	ID        uint           `gorm:"primaryKey"`
	Kind      string         `gorm:"size:20;not null;uniqueIndex:idx_reports_kind_period"`
	PeriodKey string         `gorm:"size:20;not null;uniqueIndex:idx_reports_kind_period"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (ReportModel) TableName() string {
	return "reports"
}
