// Package http wires the HTTP surface: repositories, use cases, handlers
// and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reportUC "chamados/internal/application/report/usecases"
	ticketUC "chamados/internal/application/ticket/usecases"
	"chamados/internal/infrastructure/cache"
	"chamados/internal/infrastructure/config"
	"chamados/internal/infrastructure/repository"
	reporthandlers "chamados/internal/interfaces/http/handlers/report"
	tickethandlers "chamados/internal/interfaces/http/handlers/ticket"
	"chamados/internal/interfaces/http/middleware"
	"chamados/internal/interfaces/http/routes"
	"chamados/internal/shared/logger"
)

// Router holds the engine and the handlers registered on it.
type Router struct {
	engine        *gin.Engine
	ticketHandler *tickethandlers.TicketHandler
	reportHandler *reporthandlers.ReportHandler
	logger        logger.Interface
}

// NewRouter builds the dependency graph from the database connection and the
// report cache down to the HTTP handlers.
func NewRouter(db *gorm.DB, reportCache *cache.ReportCache, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	reportRepo := repository.NewReportRepository(db)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, log),
		ticketUC.NewMoveTicketUseCase(ticketRepo, log),
		ticketUC.NewGetBoardUseCase(ticketRepo, log),
		ticketUC.NewGetTicketStatsUseCase(ticketRepo, log),
	)

	reportHandler := reporthandlers.NewReportHandler(
		reportUC.NewUpsertReportUseCase(reportRepo, log),
		reportUC.NewGetReportUseCase(reportRepo, log),
		reportUC.NewListReportsUseCase(reportRepo, log),
		reportUC.NewDeleteReportUseCase(reportRepo, log),
		reportUC.NewSaveCachedReportUseCase(reportCache, log),
		reportUC.NewSyncReportsUseCase(reportRepo, reportCache, log),
	)

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		reportHandler: reportHandler,
		logger:        log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{
		ReportHandler: r.reportHandler,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
