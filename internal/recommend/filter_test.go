package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferDiet(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        string
	}{
		{"plant only is vegan", []string{"rice", "beans", "tomato"}, "vegan"},
		{"dairy only is vegetarian", []string{"pasta", "cheese"}, "vegetarian"},
		{"fish without meat is pescatarian", []string{"salmon", "rice"}, "pescatarian"},
		{"fish and dairy is pescatarian", []string{"salmon", "butter"}, "pescatarian"},
		{"meat infers nothing", []string{"chicken", "rice"}, ""},
		{"keyword inside a phrase counts", []string{"grilled chicken breast"}, ""},
		{"empty list is vegan", nil, "vegan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDiet(tt.ingredients))
		})
	}
}

func TestPassesFilters(t *testing.T) {
	base := Recipe{
		Title:       "Chicken Rice Bowl",
		TimeMinutes: intPtr(45),
		Ingredients: []string{"chicken", "rice", "broccoli"},
	}

	t.Run("should pass with no constraints", func(t *testing.T) {
		assert.True(t, PassesFilters(base, Constraints{}))
	})

	t.Run("should reject recipes with no ingredients", func(t *testing.T) {
		assert.False(t, PassesFilters(Recipe{Title: "Empty"}, Constraints{}))
	})

	t.Run("should reject recipes over the time limit", func(t *testing.T) {
		assert.False(t, PassesFilters(base, Constraints{MaxTimeMinutes: intPtr(30)}))
	})

	t.Run("should pass recipes at or under the time limit", func(t *testing.T) {
		assert.True(t, PassesFilters(base, Constraints{MaxTimeMinutes: intPtr(45)}))
	})

	t.Run("should ignore a zero time limit", func(t *testing.T) {
		assert.True(t, PassesFilters(base, Constraints{MaxTimeMinutes: intPtr(0)}))
	})

	t.Run("should ignore the limit when the recipe has no time", func(t *testing.T) {
		r := base
		r.TimeMinutes = nil
		assert.True(t, PassesFilters(r, Constraints{MaxTimeMinutes: intPtr(10)}))
	})

	t.Run("should match an explicit diet tag case-insensitively", func(t *testing.T) {
		r := base
		r.Diet = "Vegan"
		assert.True(t, PassesFilters(r, Constraints{DietTypes: []string{"vegan"}}))
	})

	t.Run("should fall back to inference when the tag misses", func(t *testing.T) {
		r := Recipe{Title: "Salad", Ingredients: []string{"lettuce", "tomato"}}
		assert.True(t, PassesFilters(r, Constraints{DietTypes: []string{"vegan"}}))
	})

	t.Run("should reject when neither tag nor inference matches", func(t *testing.T) {
		assert.False(t, PassesFilters(base, Constraints{DietTypes: []string{"vegan"}}))
	})

	t.Run("should require every included ingredient", func(t *testing.T) {
		assert.True(t, PassesFilters(base, Constraints{IncludeIngredients: []string{"chicken"}}))
		assert.False(t, PassesFilters(base, Constraints{IncludeIngredients: []string{"chicken", "salmon"}}))
	})

	t.Run("should reject any excluded ingredient", func(t *testing.T) {
		assert.False(t, PassesFilters(base, Constraints{ExcludeIngredients: []string{"broccoli"}}))
		assert.True(t, PassesFilters(base, Constraints{ExcludeIngredients: []string{"peanut"}}))
	})

	t.Run("should reject excluded substrings", func(t *testing.T) {
		r := Recipe{Title: "Satay", Ingredients: []string{"peanut butter", "noodles"}}
		assert.False(t, PassesFilters(r, Constraints{ExcludeIngredients: []string{"pea"}}))
	})
}
