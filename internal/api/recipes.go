package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/internal/models"
	"github.com/Nia806/Epoch/internal/store"
)

// RecipeHandler exposes the saved-recipe store to the UI layer.
type RecipeHandler struct {
	recipes *store.RecipeStore
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *store.RecipeStore) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.SaveRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// SaveRecipeRequest is the body for POST /recipes.
type SaveRecipeRequest struct {
	Name     string              `json:"name" binding:"required"`
	Quantity int                 `json:"quantity"`
	Analysis models.AnalysisData `json:"analysis_data"`
}

// ListRecipes returns every saved recipe, most recent first.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.recipes.GetAll(c.Request.Context())})
}

// SaveRecipe constructs and stores a recipe from an analysis payload.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var req SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	recipe := h.recipes.Add(c.Request.Context(), store.NewRecipe{
		Name:     req.Name,
		Quantity: req.Quantity,
		Analysis: req.Analysis,
	})

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// DeleteRecipe removes a saved recipe by id. Deleting an unknown id still
// succeeds; the store treats it as a no-op.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	h.recipes.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
