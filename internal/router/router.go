package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/internal/api"
	"github.com/Nia806/Epoch/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	archetypeHandler *api.ArchetypeHandler,
	dashboardHandler *api.DashboardHandler,
	allowedOrigins []string,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(rateLimiter.RateLimitMiddleware())
	}

	recipeHandler.RegisterRoutes(v1)
	archetypeHandler.RegisterRoutes(v1)
	dashboardHandler.RegisterRoutes(v1)

	return router
}
