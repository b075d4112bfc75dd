package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/internal/keyvalue"
	"github.com/Nia806/Epoch/internal/store"
)

// setupTestRouter wires the handlers over a fresh in-memory medium.
func setupTestRouter(t *testing.T) (*gin.Engine, *store.RecipeStore, *store.ArchetypeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	medium := keyvalue.NewMemoryStore()
	recipes := store.NewRecipeStore(medium)
	archetypes := store.NewArchetypeStore(medium)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(recipes).RegisterRoutes(v1)
	NewArchetypeHandler(archetypes).RegisterRoutes(v1)
	NewDashboardHandler(recipes, archetypes).RegisterRoutes(v1)

	return router, recipes, archetypes
}

// doJSON issues a request with a JSON body and returns the recorder.
func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
