// Package store implements the slot-backed record stores: saved recipes and
// custom archetype names. Both follow the same read-modify-write pattern
// over a keyvalue.Store medium and notify in-process observers after every
// mutation. Store methods never return errors: read corruption degrades to
// an empty collection and write failures are logged and swallowed, because
// the persisted data is a best-effort cache of server-authoritative results.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Nia806/Epoch/internal/keyvalue"
	"github.com/Nia806/Epoch/internal/models"
)

// RecipeSlot is the medium key holding the saved-recipe collection.
const RecipeSlot = "saved_recipes"

// TimestampLayout is the human-readable creation-time format stamped on a
// recipe when it is saved. It is never reformatted afterwards.
const TimestampLayout = "January 2, 2006 at 3:04 PM"

// NewRecipe is the input to RecipeStore.Add: the display name, an optional
// serving count, and the analysis payload the record is derived from.
type NewRecipe struct {
	Name     string              `json:"name"`
	Quantity int                 `json:"quantity,omitempty"`
	Analysis models.AnalysisData `json:"analysis_data"`
}

// RecipeStore owns the saved-recipe slot. New recipes are prepended so the
// collection reads most-recent-first.
type RecipeStore struct {
	medium   keyvalue.Store
	notifier *Notifier
}

// NewRecipeStore creates a store over the given persistence medium.
func NewRecipeStore(medium keyvalue.Store) *RecipeStore {
	return &RecipeStore{
		medium:   medium,
		notifier: NewNotifier(),
	}
}

// GetAll returns the saved recipes, most recent first. An absent slot,
// invalid JSON, or a non-array payload all yield an empty slice.
func (s *RecipeStore) GetAll(ctx context.Context) []models.Recipe {
	raw, err := s.medium.Get(ctx, RecipeSlot)
	if err != nil {
		if !errors.Is(err, keyvalue.ErrNotFound) {
			log.Printf("[RecipeStore] read failed, treating as empty: %v", err)
		}
		return []models.Recipe{}
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		log.Printf("[RecipeStore] corrupt slot, treating as empty: %v", err)
		return []models.Recipe{}
	}
	if recipes == nil {
		return []models.Recipe{}
	}
	return recipes
}

// Add constructs a recipe record from the analysis payload, prepends it to
// the collection, persists, and notifies subscribers. The record is returned
// even when persisting fails.
func (s *RecipeStore) Add(ctx context.Context, input NewRecipe) models.Recipe {
	recipe := buildRecipe(input)

	recipes := append([]models.Recipe{recipe}, s.GetAll(ctx)...)
	s.save(ctx, recipes)
	s.notifier.Publish()

	return recipe
}

// Remove deletes the recipe with the given id. A miss is a no-op, not an
// error; the collection is re-persisted and subscribers notified either way.
func (s *RecipeStore) Remove(ctx context.Context, id string) {
	recipes := s.GetAll(ctx)
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	s.save(ctx, kept)
	s.notifier.Publish()
}

// Subscribe registers an observer for changes to this store and returns its
// deregistration func.
func (s *RecipeStore) Subscribe(fn func()) func() {
	return s.notifier.Subscribe(fn)
}

func (s *RecipeStore) save(ctx context.Context, recipes []models.Recipe) {
	data, err := json.Marshal(recipes)
	if err != nil {
		log.Printf("[RecipeStore] failed to encode recipes: %v", err)
		return
	}
	if err := s.medium.Set(ctx, RecipeSlot, string(data)); err != nil {
		log.Printf("[RecipeStore] failed to persist recipes: %v", err)
	}
}

// buildRecipe derives the stored record from the analysis payload. The
// original analysis supplies the baseline score and rating; a recalculated
// analysis, when present, supplies the improved score and takes precedence
// for the ingredient list.
func buildRecipe(input NewRecipe) models.Recipe {
	recipe := models.Recipe{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Quantity:  input.Quantity,
		Rating:    "Unknown",
		Timestamp: time.Now().Format(TimestampLayout),
	}

	analysis := input.Analysis
	if score := analysis.OriginalHealthScore; score != nil {
		recipe.HealthScore = score.Score
		if score.Rating != "" {
			recipe.Rating = score.Rating
		}
	}
	if score := analysis.RecalculatedHealthScore; score != nil {
		improved := score.Score
		recipe.ImprovedScore = &improved
	}

	recipe.Ingredients = analysis.Ingredients
	if len(analysis.FinalIngredients) > 0 {
		recipe.Ingredients = analysis.FinalIngredients
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}

	recipe.DetectedAllergens = normalizeAllergens(analysis.DetectedAllergens)

	recipe.SwapSuggestions = analysis.SwapSuggestions
	if recipe.SwapSuggestions == nil {
		recipe.SwapSuggestions = []models.SwapSuggestion{}
	}

	return recipe
}

// normalizeAllergens flattens the already-label-resolved entries into a
// set-like ordered slice, keeping the first occurrence of each label.
func normalizeAllergens(entries []models.AllergenEntry) []string {
	labels := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		label := string(entry)
		if label == "" {
			label = "Unknown"
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
