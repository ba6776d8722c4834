package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "chamados/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/board",
			config.TicketHandler.GetBoard)
		tickets.GET("/stats",
			config.TicketHandler.GetStats)

		// Using PATCH for state changes as per RESTful best practices
		tickets.PATCH("/:id/move",
			config.TicketHandler.MoveTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}
}
