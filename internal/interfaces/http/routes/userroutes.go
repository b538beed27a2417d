package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", config.UserHandler.GetProfile)
		users.PUT("/me", config.UserHandler.UpdateProfile)
		users.PUT("/me/password", config.UserHandler.ChangePassword)

		users.GET("", middleware.RequireAdmin(), config.UserHandler.ListUsers)
		users.PATCH("/:id/role", middleware.RequireAdmin(), config.UserHandler.ChangeRole)
		users.DELETE("/:id", middleware.RequireAdmin(), config.UserHandler.DeleteUser)
	}
}
