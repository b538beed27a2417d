package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/api/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("", middleware.RequireAdmin(), config.CategoryHandler.AddCategory)
		categories.DELETE("/:name", middleware.RequireAdmin(), config.CategoryHandler.RemoveCategory)
	}
}
