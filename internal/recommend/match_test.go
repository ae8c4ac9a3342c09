package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestMatches(t *testing.T) {
	t.Run("should match identical names ignoring case and whitespace", func(t *testing.T) {
		assert.True(t, Matches("Chicken", " chicken "))
		assert.True(t, Matches("TOMATO", "tomato"))
	})

	t.Run("should match when one name contains the other", func(t *testing.T) {
		assert.True(t, Matches("chicken breast", "chicken"))
		assert.True(t, Matches("rice", "brown rice"))
	})

	t.Run("should not match unrelated names", func(t *testing.T) {
		assert.False(t, Matches("chicken", "beef"))
		assert.False(t, Matches("salmon", "tofu"))
	})

	t.Run("captures substring false positives", func(t *testing.T) {
		// Documented behavior other filters rely on; a change here is a
		// semantic break, not a fix.
		assert.True(t, Matches("pea", "peanut butter"))
		assert.True(t, Matches("peanut", "pea"))
	})
}

func TestContainsAll(t *testing.T) {
	ingredients := []string{"chicken breast", "rice", "broccoli"}

	t.Run("should pass when every required name matches", func(t *testing.T) {
		assert.True(t, ContainsAll(ingredients, []string{"chicken", "rice"}))
	})

	t.Run("should fail when any required name is absent", func(t *testing.T) {
		assert.False(t, ContainsAll(ingredients, []string{"chicken", "salmon"}))
	})

	t.Run("should pass with no requirements", func(t *testing.T) {
		assert.True(t, ContainsAll(ingredients, nil))
	})
}

func TestContainsAny(t *testing.T) {
	ingredients := []string{"chicken breast", "rice", "broccoli"}

	t.Run("should detect an excluded ingredient", func(t *testing.T) {
		assert.True(t, ContainsAny(ingredients, []string{"chicken"}))
	})

	t.Run("should report false when nothing matches", func(t *testing.T) {
		assert.False(t, ContainsAny(ingredients, []string{"peanut", "shrimp"}))
	})

	t.Run("should report false with empty exclude list", func(t *testing.T) {
		assert.False(t, ContainsAny(ingredients, nil))
	})
}
