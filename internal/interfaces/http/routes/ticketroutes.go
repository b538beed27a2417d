package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints come before the bare :id route.
		tickets.POST("/:id/assign",
			middleware.RequireAgent(),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			middleware.RequireAgent(),
			config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.POST("/:id/vote", config.TicketHandler.Vote)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
