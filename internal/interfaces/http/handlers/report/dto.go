package report

import (
	"github.com/gin-gonic/gin"

	"chamados/internal/domain/report"
	"chamados/internal/shared/errors"
)

// SaveReportRequest is the payload body shared by the store and cache save
// endpoints. Kind and period key travel in the path.
type SaveReportRequest struct {
	Payload report.Payload `json:"payload" binding:"required"`
}

func parseKind(c *gin.Context) (string, error) {
	kind := c.Param("kind")
	if kind == "" {
		return "", errors.NewValidationError("report kind is required")
	}
	return kind, nil
}

func parsePeriodKey(c *gin.Context) (string, error) {
	key := c.Param("key")
	if key == "" {
		return "", errors.NewValidationError("period key is required")
	}
	return key, nil
}
