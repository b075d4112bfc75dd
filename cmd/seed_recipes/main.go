package main

import (
	"context"
	"log"

	"github.com/Nia806/Epoch/config"
	"github.com/Nia806/Epoch/internal/models"
	"github.com/Nia806/Epoch/internal/server"
	"github.com/Nia806/Epoch/internal/store"
)

func score(value float64, rating string) *models.HealthScore {
	return &models.HealthScore{Score: value, Rating: rating}
}

// Demo data for local development: a handful of saved analyses covering the
// interesting shapes (improved score, allergens, swaps).
var seedRecipes = []store.NewRecipe{
	{
		Name:     "Chicken Curry",
		Quantity: 4,
		Analysis: models.AnalysisData{
			OriginalHealthScore: score(68, "Good"),
			Ingredients:         []string{"chicken breast", "curry powder", "onion", "garlic", "coconut milk"},
		},
	},
	{
		Name:     "Butter Chicken",
		Quantity: 2,
		Analysis: models.AnalysisData{
			OriginalHealthScore:     score(41, "Poor"),
			RecalculatedHealthScore: score(63, "Good"),
			Ingredients:             []string{"chicken", "butter", "cream", "tomato"},
			FinalIngredients:        []string{"chicken", "greek yogurt", "olive oil", "tomato"},
			DetectedAllergens:       []models.AllergenEntry{"milk"},
			SwapSuggestions: []models.SwapSuggestion{
				{Original: "cream", Substitute: "greek yogurt", Accepted: true},
				{Original: "butter", Substitute: "olive oil", Accepted: true},
			},
		},
	},
	{
		Name: "Peanut Noodles",
		Analysis: models.AnalysisData{
			OriginalHealthScore: score(55, "Fair"),
			Ingredients:         []string{"noodles", "peanut butter", "soy sauce", "scallions"},
			DetectedAllergens:   []models.AllergenEntry{"peanuts", "soy", "wheat"},
		},
	},
}

var seedArchetypes = []string{"Keto", "Mediterranean"}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	recipes, archetypes, err := server.NewStores(cfg)
	if err != nil {
		log.Fatalf("failed to initialize stores: %v", err)
	}

	ctx := context.Background()
	for _, input := range seedRecipes {
		recipe := recipes.Add(ctx, input)
		log.Printf("seeded recipe %q (%s)", recipe.Name, recipe.ID)
	}
	for _, name := range seedArchetypes {
		archetypes.Add(ctx, name)
		log.Printf("seeded archetype %q", name)
	}

	log.Printf("done: %d recipes, %d archetypes", len(recipes.GetAll(ctx)), len(archetypes.GetAll(ctx)))
}
