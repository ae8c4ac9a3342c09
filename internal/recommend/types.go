// Package recommend implements the recipe scoring and filtering engine:
// hard eligibility filters followed by four independent soft sub-scores
// (pantry coverage, expiry urgency, nutrition-goal fit, mood/energy
// alignment) blended into a single ranking score with fixed weights.
//
// The engine is pure and synchronous. It holds no state between calls and
// performs no I/O; the injected Predictor is the only boundary crossing.
// Callers adapt whatever storage shape they have onto Recipe and
// PantryItem before ranking.
package recommend

import (
	"context"

	"github.com/google/uuid"
)

// Macros carries a recipe's nutrition columns. Every field is optional;
// a nil value means the data was never imported, not zero. The Nutrition*
// fields are the alternate columns written by the nutrition importer and
// are read only when the primary column is nil.
type Macros struct {
	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	SugarG   *float64

	NutritionCalories *float64
	NutritionProteinG *float64
	NutritionCarbsG   *float64
	NutritionFatG     *float64
	NutritionSugarG   *float64
}

// macro keys shared by the nutrition and mood/energy scorers.
const (
	macroCalories = "calories"
	macroProteinG = "protein_g"
	macroCarbsG   = "carbs_g"
	macroFatG     = "fat_g"
	macroSugarG   = "sugar_g"
)

// Get returns the macro value for key, preferring the primary column and
// falling back to the importer's alternate. Nil means missing.
func (m Macros) Get(key string) *float64 {
	switch key {
	case macroCalories:
		if m.Calories != nil {
			return m.Calories
		}
		return m.NutritionCalories
	case macroProteinG:
		if m.ProteinG != nil {
			return m.ProteinG
		}
		return m.NutritionProteinG
	case macroCarbsG:
		if m.CarbsG != nil {
			return m.CarbsG
		}
		return m.NutritionCarbsG
	case macroFatG:
		if m.FatG != nil {
			return m.FatG
		}
		return m.NutritionFatG
	case macroSugarG:
		if m.SugarG != nil {
			return m.SugarG
		}
		return m.NutritionSugarG
	}
	return nil
}

// Recipe is the single read shape the engine scores. Inputs are never
// mutated.
type Recipe struct {
	ID          uuid.UUID
	Title       string
	TimeMinutes *int
	Diet        string
	Cuisine     string
	AvgRating   *float64
	Ingredients []string
	Macros      Macros
}

// PantryItem is one item the user has on hand. Expiration is the raw date
// string ("2006-01-02" or RFC 3339); empty or unparsable values simply
// never contribute to the expiry score.
type PantryItem struct {
	Name       string
	Expiration string
}

// Constraints are the user's request. Every field is optional; an unset
// field means no constraint on that axis.
type Constraints struct {
	DietTypes            []string
	IncludeIngredients   []string
	ExcludeIngredients   []string
	MaxTimeMinutes       *int
	Mood                 string
	EnergyLevel          string
	NutritionGoal        string
	PrioritizeMacro      string
	PrioritizeIngredient string
	Cuisines             []string
}

// Prediction is one output of the external mood/energy model.
type Prediction struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Predictor is the external mood/energy model contract. Either result may
// be nil when prediction is impossible; a non-nil error covers transport
// or model failures. The scorer treats both the same way: it falls back
// to heuristics and never propagates the failure.
type Predictor interface {
	Predict(ctx context.Context, nutrition map[string]float64) (mood, energy *Prediction, err error)
}

// Weights are the composite blend factors. They sum to 1.0; signed
// sub-scores can still push a composite below zero.
type Weights struct {
	Coverage   float64 `json:"coverage"`
	Expiring   float64 `json:"expiring"`
	Nutrition  float64 `json:"nutrition"`
	MoodEnergy float64 `json:"mood_energy"`
}

// CoverageDebug reports the pantry coverage computation.
type CoverageDebug struct {
	Score   float64 `json:"score"`
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
}

// ExpiringDebug reports the expiry-urgency computation. Matched keeps the
// raw per-ingredient hits; the explanation string dedupes for display.
type ExpiringDebug struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
}

// NutritionDebug exposes the resolved goal, the threshold row used, raw
// macro values, per-macro component scores and which macros were missing.
type NutritionDebug struct {
	Score         float64             `json:"score"`
	Explanation   string              `json:"explanation"`
	Goal          string              `json:"goal"`
	Thresholds    map[string]float64  `json:"thresholds"`
	Macros        map[string]*float64 `json:"macros"`
	Components    map[string]float64  `json:"components"`
	MissingMacros []string            `json:"missing_macros"`
}

// MoodEnergyDebug exposes the requested mood/energy, the macro values the
// scorer saw, whether the ML path was used, the raw predictor outputs and
// any predictor failure.
type MoodEnergyDebug struct {
	Score       float64     `json:"score"`
	Explanation string      `json:"explanation"`
	Mood        string      `json:"mood"`
	Energy      string      `json:"energy"`
	Calories    *float64    `json:"calories"`
	FatG        *float64    `json:"fat_g"`
	ProteinG    *float64    `json:"protein_g"`
	CarbsG      *float64    `json:"carbs_g"`
	SugarG      *float64    `json:"sugar_g"`
	TimeMinutes *int        `json:"time_minutes"`
	MLUsed      bool        `json:"ml_used"`
	MLMood      *Prediction `json:"ml_mood,omitempty"`
	MLEnergy    *Prediction `json:"ml_energy,omitempty"`
	MLError     string      `json:"ml_error,omitempty"`
}

// Debug is the full per-recipe scoring trace.
type Debug struct {
	Weights    Weights         `json:"weights"`
	Coverage   CoverageDebug   `json:"coverage"`
	Expiring   ExpiringDebug   `json:"expiring"`
	Nutrition  NutritionDebug  `json:"nutrition"`
	MoodEnergy MoodEnergyDebug `json:"mood_energy"`
}

// ScoreResult is one ranked recipe. Created fresh on every call and never
// persisted by the engine.
type ScoreResult struct {
	RecipeID    uuid.UUID `json:"recipe_id"`
	Title       string    `json:"title"`
	TimeMinutes *int      `json:"time_minutes"`
	Coverage    float64   `json:"coverage"`
	Expiring    float64   `json:"expiring"`
	Nutrition   float64   `json:"nutrition"`
	MoodEnergy  float64   `json:"mood_energy"`
	FinalScore  float64   `json:"score"`
	Reason      string    `json:"reason"`
	Explanation string    `json:"explanation"`
	Debug       Debug     `json:"debug"`
}
