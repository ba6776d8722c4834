package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "chamados/internal/interfaces/http/handlers/report"
)

type ReportRouteConfig struct {
	ReportHandler *reporthandlers.ReportHandler
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports/:kind")
	{
		reports.GET("",
			config.ReportHandler.ListReports)

		// Specific named endpoints (must come BEFORE /:key to avoid conflicts)
		reports.POST("/sync",
			config.ReportHandler.SyncReports)
		reports.PUT("/cache/:key",
			config.ReportHandler.SaveCachedReport)

		// Generic parameterized routes (must come LAST)
		reports.GET("/:key",
			config.ReportHandler.GetReport)
		reports.PUT("/:key",
			config.ReportHandler.UpsertReport)
		reports.DELETE("/:key",
			config.ReportHandler.DeleteReport)
	}
}
