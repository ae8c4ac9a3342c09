package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitchenpal/backend/internal/recommend"
)

func TestParseConstraints(t *testing.T) {
	t.Run("should read quick as a 20 minute limit", func(t *testing.T) {
		c := ParseConstraints("something quick for dinner")

		if assert.NotNil(t, c.MaxTimeMinutes) {
			assert.Equal(t, 20, *c.MaxTimeMinutes)
		}
	})

	t.Run("should read under 30 as a 30 minute limit", func(t *testing.T) {
		c := ParseConstraints("dinner under 30 minutes")

		if assert.NotNil(t, c.MaxTimeMinutes) {
			assert.Equal(t, 30, *c.MaxTimeMinutes)
		}
	})

	t.Run("should detect diet keywords", func(t *testing.T) {
		assert.Equal(t, []string{"vegan"}, ParseConstraints("any vegan ideas?").DietTypes)
		assert.Equal(t, []string{"vegetarian"}, ParseConstraints("vegetarian please").DietTypes)
		assert.Equal(t, []string{"keto"}, ParseConstraints("keto dinner").DietTypes)
	})

	t.Run("should expand a protein wish into an ingredient list", func(t *testing.T) {
		c := ParseConstraints("I need more protein")

		assert.Equal(t, "protein", c.PrioritizeIngredient)
		assert.Contains(t, c.IncludeIngredients, "chicken")
		assert.Contains(t, c.IncludeIngredients, "tofu")
	})

	t.Run("should set the low carb macro goal", func(t *testing.T) {
		c := ParseConstraints("low carb tonight")

		assert.Equal(t, recommend.GoalLowCarb, c.PrioritizeMacro)
	})

	t.Run("should exclude rich ingredients for light requests", func(t *testing.T) {
		c := ParseConstraints("something light")

		assert.Equal(t, []string{"cream", "butter", "oil"}, c.ExcludeIngredients)
	})

	t.Run("should exclude gluten sources", func(t *testing.T) {
		c := ParseConstraints("gluten free options")

		assert.Contains(t, c.ExcludeIngredients, "gluten")
		assert.Contains(t, c.ExcludeIngredients, "wheat")
		assert.Contains(t, c.ExcludeIngredients, "bread")
	})

	t.Run("should prioritize expiring items", func(t *testing.T) {
		c := ParseConstraints("help me use up what's expiring")

		assert.Equal(t, PrioritizeExpiring, c.PrioritizeIngredient)
	})

	t.Run("should extract ingredients after use", func(t *testing.T) {
		c := ParseConstraints("use chicken, rice")

		assert.Contains(t, c.IncludeIngredients, "chicken")
		assert.Contains(t, c.IncludeIngredients, "rice")
	})

	t.Run("should extract an exclusion after no", func(t *testing.T) {
		c := ParseConstraints("no peanuts")

		assert.Contains(t, c.ExcludeIngredients, "peanuts")
	})

	t.Run("should dedupe repeated mentions", func(t *testing.T) {
		c := ParseConstraints("use rice and use rice")

		count := 0
		for _, ing := range c.IncludeIngredients {
			if ing == "rice" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("should return empty constraints for small talk", func(t *testing.T) {
		c := ParseConstraints("hello there")

		assert.Nil(t, c.MaxTimeMinutes)
		assert.Empty(t, c.DietTypes)
		assert.Empty(t, c.IncludeIngredients)
		assert.Empty(t, c.ExcludeIngredients)
	})
}

func TestExpiringWindowDays(t *testing.T) {
	t.Run("should read an explicit window", func(t *testing.T) {
		assert.Equal(t, 5, ExpiringWindowDays("what is expiring in 5 days?"))
	})

	t.Run("should accept the singular form", func(t *testing.T) {
		assert.Equal(t, 1, ExpiringWindowDays("expiring in 1 day"))
	})

	t.Run("should default to three days", func(t *testing.T) {
		assert.Equal(t, 3, ExpiringWindowDays("what should I cook?"))
	})
}
