package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveArchetype(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "Keto"})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Custom []string `json:"custom"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"Keto"}, response.Custom)
}

func TestSaveArchetypeDeduplicates(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "Vegan"})
	w := doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "vegan"})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Custom []string `json:"custom"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"Vegan"}, response.Custom)
}

func TestSaveArchetypeRejectsPreset(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "fitness"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListArchetypesIncludesPresets(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "Paleo"})

	w := doJSON(router, "GET", "/api/v1/archetypes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Presets []string `json:"presets"`
		Custom  []string `json:"custom"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"fitness", "dietary"}, response.Presets)
	assert.Equal(t, []string{"Paleo"}, response.Custom)
}

func TestDeleteArchetype(t *testing.T) {
	router, _, archetypes := setupTestRouter(t)

	doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "Keto"})
	doJSON(router, "POST", "/api/v1/archetypes", map[string]string{"name": "Paleo"})

	w := doJSON(router, "DELETE", "/api/v1/archetypes/Keto", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"Paleo"}, archetypes.GetAll(context.Background()))
}

func TestDeleteArchetypeRejectsPreset(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(router, "DELETE", "/api/v1/archetypes/dietary", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
