package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/internal/models"
	"github.com/Nia806/Epoch/internal/store"
)

// ArchetypeHandler exposes the custom-archetype store to the UI layer.
type ArchetypeHandler struct {
	archetypes *store.ArchetypeStore
}

// NewArchetypeHandler creates a new ArchetypeHandler.
func NewArchetypeHandler(archetypes *store.ArchetypeStore) *ArchetypeHandler {
	return &ArchetypeHandler{archetypes: archetypes}
}

// RegisterRoutes registers the archetype routes.
func (h *ArchetypeHandler) RegisterRoutes(router *gin.RouterGroup) {
	archetypes := router.Group("/archetypes")
	{
		archetypes.GET("", h.ListArchetypes)
		archetypes.POST("", h.SaveArchetype)
		archetypes.DELETE("/:name", h.DeleteArchetype)
	}
}

// SaveArchetypeRequest is the body for POST /archetypes.
type SaveArchetypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListArchetypes returns the built-in presets alongside the saved custom
// names.
func (h *ArchetypeHandler) ListArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": models.PresetArchetypes(),
		"custom":  h.archetypes.GetAll(c.Request.Context()),
	})
}

// SaveArchetype stores a custom archetype name. Preset identifiers are
// rejected; duplicates and already-trimmed blanks are silent store no-ops,
// so the response is 201 either way.
func (h *ArchetypeHandler) SaveArchetype(c *gin.Context) {
	var req SaveArchetypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.archetypes.IsPreset(req.Name) {
		c.JSON(http.StatusConflict, gin.H{"error": "archetype is a built-in preset"})
		return
	}

	h.archetypes.Add(c.Request.Context(), req.Name)
	c.JSON(http.StatusCreated, gin.H{"custom": h.archetypes.GetAll(c.Request.Context())})
}

// DeleteArchetype removes a custom archetype by name. Presets cannot be
// removed.
func (h *ArchetypeHandler) DeleteArchetype(c *gin.Context) {
	name := c.Param("name")
	if h.archetypes.IsPreset(name) {
		c.JSON(http.StatusConflict, gin.H{"error": "archetype is a built-in preset"})
		return
	}

	h.archetypes.Remove(c.Request.Context(), name)
	c.Status(http.StatusNoContent)
}
