package models

import (
	"encoding/json"
)

// Recipe represents one saved recipe analysis result. ID and Timestamp are
// assigned at creation time and never change; there is no update operation,
// only create and delete.
type Recipe struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Quantity          int              `json:"quantity,omitempty"`
	HealthScore       float64          `json:"health_score"`
	Rating            string           `json:"rating"`
	Ingredients       []string         `json:"ingredients"`
	ImprovedScore     *float64         `json:"improved_score,omitempty"`
	DetectedAllergens []string         `json:"detected_allergens"`
	SwapSuggestions   []SwapSuggestion `json:"swap_suggestions"`
	Timestamp         string           `json:"timestamp"`
}

// SwapSuggestion is one proposed ingredient substitution from the analysis.
type SwapSuggestion struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
	Accepted   bool   `json:"accepted"`
}

// HealthScore is a scored rating from an analysis pass.
type HealthScore struct {
	Score  float64 `json:"score"`
	Rating string  `json:"rating"`
}

// AnalysisData is the analysis-result payload a recipe is saved from. The
// original analysis carries the baseline score; a recalculated analysis, when
// present, carries the improved score and the authoritative ingredient list.
type AnalysisData struct {
	OriginalHealthScore     *HealthScore     `json:"original_health_score,omitempty"`
	RecalculatedHealthScore *HealthScore     `json:"recalculated_health_score,omitempty"`
	Ingredients             []string         `json:"ingredients,omitempty"`
	FinalIngredients        []string         `json:"final_ingredients,omitempty"`
	DetectedAllergens       []AllergenEntry  `json:"detected_allergens,omitempty"`
	SwapSuggestions         []SwapSuggestion `json:"swap_suggestions,omitempty"`
}

// AllergenEntry normalizes an allergen from the analysis payload to its
// category label. Upstream is inconsistent about the shape: an entry may be
// a bare string or an object keyed by allergen_category or category.
type AllergenEntry string

// UnmarshalJSON accepts either a bare string or an object, resolving the
// label via allergen_category, then category, then "Unknown".
func (a *AllergenEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AllergenEntry(s)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for _, key := range []string{"allergen_category", "category"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			*a = AllergenEntry(s)
			return nil
		}
	}

	*a = "Unknown"
	return nil
}
