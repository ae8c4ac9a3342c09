package api

import (
	"time"

	"github.com/kitchenpal/backend/internal/recommend"
)

// ChatRecipesRequest carries structured recommendation criteria.
type ChatRecipesRequest struct {
	Mood               string   `json:"mood"`
	Energy             string   `json:"energy"`
	Diet               string   `json:"diet"`
	IncludeIngredients []string `json:"include_ingredients"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
	MaxTimeMinutes     *int     `json:"max_time_minutes"`
	NutritionGoal      string   `json:"nutrition_goal"`
}

// ChatMessageRequest carries a free-text request; constraints are parsed
// out of the message server-side.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// RecipeSuggestion is one ranked recommendation in a chat response.
type RecipeSuggestion struct {
	RecipeID    string           `json:"recipe_id"`
	Title       string           `json:"title"`
	Reason      string           `json:"reason"`
	TimeMinutes *int             `json:"time_minutes,omitempty"`
	Explanation string           `json:"explanation,omitempty"`
	Debug       *recommend.Debug `json:"debug,omitempty"`
}

// ChatRecipesResponse pairs suggestions with a natural-language reply.
type ChatRecipesResponse struct {
	Reply   string             `json:"reply"`
	Recipes []RecipeSuggestion `json:"recipes"`
}

// RecommendRequest is the MVP recommender payload: raw constraints plus
// an optional result limit.
type RecommendRequest struct {
	Cuisine            []string `json:"cuisine"`
	DietTypes          []string `json:"diet_types"`
	IncludeIngredients []string `json:"include_ingredients"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
	MaxTimeMinutes     *int     `json:"max_time_minutes"`
	Limit              int      `json:"limit"`
}

// RecipeCreateRequest creates a recipe from a title plus ingredient
// lines. Ingredients are canonicalized on the way in.
type RecipeCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
	TimeMinutes *int     `json:"time_minutes"`
	Diet        string   `json:"diet"`
	Cuisine     string   `json:"cuisine"`
	AvgRating   *float64 `json:"avg_rating"`
	Calories    *float64 `json:"calories"`
	ProteinG    *float64 `json:"protein_g"`
	CarbsG      *float64 `json:"carbs_g"`
	FatG        *float64 `json:"fat_g"`
	SugarG      *float64 `json:"sugar_g"`
}

// ItemCreateRequest creates a pantry item. Category and quantity default
// so quick adds can skip them.
type ItemCreateRequest struct {
	Name              string     `json:"name" binding:"required"`
	Category          string     `json:"category"`
	Quantity          *float64   `json:"quantity"`
	Unit              string     `json:"unit"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	ExpirationDate    *time.Time `json:"expiration_date"`
	EstimatedCalories *float64   `json:"estimated_calories"`
	EstimatedProteinG *float64   `json:"estimated_protein_g"`
	EstimatedCarbsG   *float64   `json:"estimated_carbs_g"`
	EstimatedFatG     *float64   `json:"estimated_fat_g"`
}

// ItemUpdateRequest patches an item; nil fields are left untouched.
type ItemUpdateRequest struct {
	Name           *string    `json:"name"`
	Category       *string    `json:"category"`
	Quantity       *float64   `json:"quantity"`
	Unit           *string    `json:"unit"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// QuantityRequest is the consume/restock payload.
type QuantityRequest struct {
	Amount float64 `json:"amount"`
}

// MealLogCreateRequest records post-cooking feedback.
type MealLogCreateRequest struct {
	RecipeID     *string    `json:"recipe_id"`
	RecipeTitle  string     `json:"recipe_title" binding:"required"`
	TasteRating  *int       `json:"taste_rating"`
	LikedTags    []string   `json:"liked_tags"`
	DislikedTags []string   `json:"disliked_tags"`
	FeelAfter    string     `json:"feel_after"`
	Notes        string     `json:"notes"`
	CookedAt     *time.Time `json:"cooked_at"`
}
