package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/internal/store"
)

// DashboardHandler handles dashboard-related requests
type DashboardHandler struct {
	recipes    *store.RecipeStore
	archetypes *store.ArchetypeStore
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(recipes *store.RecipeStore, archetypes *store.ArchetypeStore) *DashboardHandler {
	return &DashboardHandler{
		recipes:    recipes,
		archetypes: archetypes,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	RecipesSaved       int     `json:"recipesSaved"`
	AverageHealthScore float64 `json:"averageHealthScore"`
	RecipesImproved    int     `json:"recipesImproved"`
	CustomArchetypes   int     `json:"customArchetypes"`
}

// GetStats returns aggregate statistics over the saved collections.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	recipes := h.recipes.GetAll(ctx)
	stats := DashboardStats{
		RecipesSaved:     len(recipes),
		CustomArchetypes: len(h.archetypes.GetAll(ctx)),
	}

	var total float64
	for _, r := range recipes {
		total += r.HealthScore
		if r.ImprovedScore != nil {
			stats.RecipesImproved++
		}
	}
	if len(recipes) > 0 {
		stats.AverageHealthScore = total / float64(len(recipes))
	}

	c.JSON(http.StatusOK, stats)
}
