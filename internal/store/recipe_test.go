package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nia806/Epoch/internal/keyvalue"
	"github.com/Nia806/Epoch/internal/models"
)

// failingMedium rejects every write, for exercising the best-effort policy.
type failingMedium struct{}

func (failingMedium) Get(ctx context.Context, key string) (string, error) {
	return "", keyvalue.ErrNotFound
}

func (failingMedium) Set(ctx context.Context, key, value string) error {
	return errors.New("medium full")
}

func analysisWithScore(score float64, rating string) models.AnalysisData {
	return models.AnalysisData{
		OriginalHealthScore: &models.HealthScore{Score: score, Rating: rating},
	}
}

func TestAddPrependsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	first := s.Add(ctx, NewRecipe{Name: "Dal", Analysis: analysisWithScore(55, "Fair")})
	second := s.Add(ctx, NewRecipe{Name: "Biryani", Analysis: analysisWithScore(48, "Fair")})

	recipes := s.GetAll(ctx)
	require.Len(t, recipes, 2)
	assert.Equal(t, second.ID, recipes[0].ID)
	assert.Equal(t, first.ID, recipes[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddScenarioPasta(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	recipe := s.Add(ctx, NewRecipe{
		Name:     "Pasta",
		Quantity: 2,
		Analysis: models.AnalysisData{
			OriginalHealthScore: &models.HealthScore{Score: 72, Rating: "Good"},
			Ingredients:         []string{"pasta", "tomato", "olive oil"},
		},
	})

	assert.Equal(t, "Pasta", recipe.Name)
	assert.Equal(t, 2, recipe.Quantity)
	assert.Equal(t, float64(72), recipe.HealthScore)
	assert.Equal(t, "Good", recipe.Rating)
	assert.Nil(t, recipe.ImprovedScore)
	assert.Equal(t, []string{"pasta", "tomato", "olive oil"}, recipe.Ingredients)
}

func TestAddPreservesOriginalScoreWithImprovement(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	recipe := s.Add(ctx, NewRecipe{
		Name: "Butter Chicken",
		Analysis: models.AnalysisData{
			OriginalHealthScore:     &models.HealthScore{Score: 40, Rating: "Poor"},
			RecalculatedHealthScore: &models.HealthScore{Score: 65, Rating: "Good"},
			Ingredients:             []string{"chicken", "butter", "cream"},
			FinalIngredients:        []string{"chicken", "yogurt", "olive oil"},
		},
	})

	assert.Equal(t, float64(40), recipe.HealthScore)
	assert.Equal(t, "Poor", recipe.Rating)
	require.NotNil(t, recipe.ImprovedScore)
	assert.Equal(t, float64(65), *recipe.ImprovedScore)
	// The recalculated ingredient list is the authoritative one.
	assert.Equal(t, []string{"chicken", "yogurt", "olive oil"}, recipe.Ingredients)
}

func TestAddDefaultsWhenAnalysisEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	recipe := s.Add(ctx, NewRecipe{Name: "Mystery Stew"})

	assert.Equal(t, float64(0), recipe.HealthScore)
	assert.Equal(t, "Unknown", recipe.Rating)
	assert.Nil(t, recipe.ImprovedScore)
	assert.Empty(t, recipe.Ingredients)
	assert.Empty(t, recipe.DetectedAllergens)
	assert.Empty(t, recipe.SwapSuggestions)
}

func TestAddStampsImmutableIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	recipe := s.Add(ctx, NewRecipe{Name: "Salad", Analysis: analysisWithScore(88, "Excellent")})

	assert.NotEmpty(t, recipe.ID)
	_, err := time.Parse(TimestampLayout, recipe.Timestamp)
	assert.NoError(t, err)

	stored := s.GetAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, recipe.ID, stored[0].ID)
	assert.Equal(t, recipe.Timestamp, stored[0].Timestamp)
}

func TestAddDeduplicatesAllergens(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	var analysis models.AnalysisData
	payload := `{
		"original_health_score": {"score": 30, "rating": "Poor"},
		"detected_allergens": ["milk", {"allergen_category": "eggs"}, "milk", {"note": "unlabeled"}]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &analysis))

	recipe := s.Add(ctx, NewRecipe{Name: "Omelette", Analysis: analysis})

	assert.Equal(t, []string{"milk", "eggs", "Unknown"}, recipe.DetectedAllergens)
}

func TestGetAllToleratesCorruptSlot(t *testing.T) {
	ctx := context.Background()
	medium := keyvalue.NewMemoryStore()
	s := NewRecipeStore(medium)

	// Absent slot.
	assert.Empty(t, s.GetAll(ctx))

	// Invalid JSON.
	require.NoError(t, medium.Set(ctx, RecipeSlot, "{not json"))
	assert.Empty(t, s.GetAll(ctx))

	// Valid JSON, wrong shape.
	require.NoError(t, medium.Set(ctx, RecipeSlot, `{"recipes": []}`))
	assert.Empty(t, s.GetAll(ctx))

	// JSON null.
	require.NoError(t, medium.Set(ctx, RecipeSlot, "null"))
	assert.Empty(t, s.GetAll(ctx))
}

func TestAddRecoversFromCorruptSlot(t *testing.T) {
	ctx := context.Background()
	medium := keyvalue.NewMemoryStore()
	s := NewRecipeStore(medium)

	require.NoError(t, medium.Set(ctx, RecipeSlot, "garbage"))

	recipe := s.Add(ctx, NewRecipe{Name: "Soup", Analysis: analysisWithScore(60, "Fair")})

	recipes := s.GetAll(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, recipe.ID, recipes[0].ID)
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	kept := s.Add(ctx, NewRecipe{Name: "Tacos", Analysis: analysisWithScore(50, "Fair")})

	s.Remove(ctx, "no-such-id")

	recipes := s.GetAll(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, kept.ID, recipes[0].ID)
}

func TestRemoveDeletesOnlyMatch(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	first := s.Add(ctx, NewRecipe{Name: "Dal", Analysis: analysisWithScore(55, "Fair")})
	second := s.Add(ctx, NewRecipe{Name: "Biryani", Analysis: analysisWithScore(48, "Fair")})

	s.Remove(ctx, second.ID)

	recipes := s.GetAll(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, first.ID, recipes[0].ID)
}

func TestSubscribeFiresOncePerMutation(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	calls := 0
	var duringAdd int
	unsubscribe := s.Subscribe(func() { calls++ })

	recipe := s.Add(ctx, NewRecipe{Name: "Curry", Analysis: analysisWithScore(45, "Fair")})
	duringAdd = calls

	// The notification is synchronous: it already happened when Add returned.
	assert.Equal(t, 1, duringAdd)

	s.Remove(ctx, recipe.ID)
	assert.Equal(t, 2, calls)

	unsubscribe()
	s.Add(ctx, NewRecipe{Name: "Rice", Analysis: analysisWithScore(70, "Good")})
	assert.Equal(t, 2, calls)
}

func TestUnsubscribeLeavesOthersIntact(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(keyvalue.NewMemoryStore())

	var first, second int
	unsubFirst := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	unsubFirst()
	unsubFirst() // idempotent

	s.Add(ctx, NewRecipe{Name: "Stew", Analysis: analysisWithScore(52, "Fair")})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestAddSurvivesWriteFailure(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore(failingMedium{})

	notified := false
	s.Subscribe(func() { notified = true })

	recipe := s.Add(ctx, NewRecipe{Name: "Pasta", Analysis: analysisWithScore(72, "Good")})

	// Durability is best-effort: the record is still constructed and
	// observers still hear about the attempt.
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, "Pasta", recipe.Name)
	assert.True(t, notified)
}
