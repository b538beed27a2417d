package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
	}
}
