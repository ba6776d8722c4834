package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamados/internal/application/report/usecases"
	"chamados/internal/shared/logger"
	"chamados/internal/shared/utils"
)

type ReportHandler struct {
	upsertReportUC     usecases.UpsertReportExecutor
	getReportUC        usecases.GetReportExecutor
	listReportsUC      usecases.ListReportsExecutor
	deleteReportUC     usecases.DeleteReportExecutor
	saveCachedReportUC usecases.SaveCachedReportExecutor
	syncReportsUC      usecases.SyncReportsExecutor
	logger             logger.Interface
}

func NewReportHandler(
	upsertReportUC usecases.UpsertReportExecutor,
	getReportUC usecases.GetReportExecutor,
	listReportsUC usecases.ListReportsExecutor,
	deleteReportUC usecases.DeleteReportExecutor,
	saveCachedReportUC usecases.SaveCachedReportExecutor,
	syncReportsUC usecases.SyncReportsExecutor,
) *ReportHandler {
	return &ReportHandler{
		upsertReportUC:     upsertReportUC,
		getReportUC:        getReportUC,
		listReportsUC:      listReportsUC,
		deleteReportUC:     deleteReportUC,
		saveCachedReportUC: saveCachedReportUC,
		syncReportsUC:      syncReportsUC,
		logger:             logger.NewLogger(),
	}
}

// ListReports handles GET /reports/:kind
func (h *ReportHandler) ListReports(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listReportsUC.Execute(c.Request.Context(), usecases.ListReportsQuery{Kind: kind})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Reports)
}

// GetReport handles GET /reports/:kind/:key
func (h *ReportHandler) GetReport(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	key, err := parsePeriodKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getReportUC.Execute(c.Request.Context(), usecases.GetReportQuery{
		Kind:      kind,
		PeriodKey: key,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertReport handles PUT /reports/:kind/:key
func (h *ReportHandler) UpsertReport(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	key, err := parsePeriodKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert report", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.upsertReportUC.Execute(c.Request.Context(), usecases.UpsertReportCommand{
		Kind:      kind,
		PeriodKey: key,
		Payload:   req.Payload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report saved successfully", result)
}

// DeleteReport handles DELETE /reports/:kind/:key
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	key, err := parsePeriodKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReportUC.Execute(c.Request.Context(), usecases.DeleteReportCommand{
		Kind:      kind,
		PeriodKey: key,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SaveCachedReport handles PUT /reports/:kind/cache/:key
func (h *ReportHandler) SaveCachedReport(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	key, err := parsePeriodKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for cache report", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.saveCachedReportUC.Execute(c.Request.Context(), usecases.SaveCachedReportCommand{
		Kind:      kind,
		PeriodKey: key,
		Payload:   req.Payload,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report cached successfully", nil)
}

// SyncReports handles POST /reports/:kind/sync
func (h *ReportHandler) SyncReports(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.syncReportsUC.Execute(c.Request.Context(), usecases.SyncReportsCommand{Kind: kind})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reports synced successfully", result)
}
