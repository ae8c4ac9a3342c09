package recommend

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mvpRecipe(title string, ingredients []string) Recipe {
	return Recipe{ID: uuid.New(), Title: title, Ingredients: ingredients}
}

func TestRecommendMVP(t *testing.T) {
	t.Run("should rank by exact pantry coverage", func(t *testing.T) {
		full := mvpRecipe("Full Match", []string{"rice", "beans"})
		partial := mvpRecipe("Partial Match", []string{"rice", "saffron"})
		none := mvpRecipe("No Match", []string{"lobster", "truffle"})

		results := RecommendMVP([]Recipe{none, partial, full}, []string{"rice", "beans"}, Constraints{}, 5)

		require.Len(t, results, 3)
		assert.Equal(t, "Full Match", results[0].Title)
		assert.Equal(t, "Partial Match", results[1].Title)
		assert.Equal(t, "No Match", results[2].Title)
	})

	t.Run("should not match by substring", func(t *testing.T) {
		r := mvpRecipe("Stir Fry", []string{"chicken breast"})

		results := RecommendMVP([]Recipe{r}, []string{"chicken"}, Constraints{}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, []string{"chicken breast"}, results[0].MissingIngredients)
	})

	t.Run("should list missing ingredients with original spelling", func(t *testing.T) {
		r := mvpRecipe("Bowl", []string{"Rice", "Black Beans", "Avocado"})

		results := RecommendMVP([]Recipe{r}, []string{"rice"}, Constraints{}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, []string{"Black Beans", "Avocado"}, results[0].MissingIngredients)
	})

	t.Run("should filter by cuisine when requested", func(t *testing.T) {
		thai := mvpRecipe("Pad Thai", []string{"noodles"})
		thai.Cuisine = "Thai"
		italian := mvpRecipe("Carbonara", []string{"pasta"})
		italian.Cuisine = "Italian"
		untagged := mvpRecipe("Mystery", []string{"rice"})

		results := RecommendMVP([]Recipe{thai, italian, untagged}, nil, Constraints{Cuisines: []string{"thai"}}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, "Pad Thai", results[0].Title)
	})

	t.Run("should require whole-name includes", func(t *testing.T) {
		exact := mvpRecipe("Roast", []string{"chicken", "potato"})
		sub := mvpRecipe("Stir Fry", []string{"chicken breast"})

		results := RecommendMVP([]Recipe{exact, sub}, nil, Constraints{IncludeIngredients: []string{"chicken"}}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, "Roast", results[0].Title)
	})

	t.Run("should drop recipes with excluded ingredients", func(t *testing.T) {
		nutty := mvpRecipe("Satay", []string{"peanut", "noodles"})
		clean := mvpRecipe("Soup", []string{"carrot", "noodles"})

		results := RecommendMVP([]Recipe{nutty, clean}, nil, Constraints{ExcludeIngredients: []string{"peanut"}}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, "Soup", results[0].Title)
	})

	t.Run("should enforce the time limit only when both sides are set", func(t *testing.T) {
		slow := mvpRecipe("Slow Roast", []string{"beef"})
		slow.TimeMinutes = intPtr(120)
		untimed := mvpRecipe("Untimed", []string{"beef"})

		results := RecommendMVP([]Recipe{slow, untimed}, nil, Constraints{MaxTimeMinutes: intPtr(30)}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, "Untimed", results[0].Title)
	})

	t.Run("should filter diets by explicit tag only", func(t *testing.T) {
		tagged := mvpRecipe("Salad", []string{"lettuce"})
		tagged.Diet = "Vegan"
		plantButUntagged := mvpRecipe("Fruit Bowl", []string{"apple", "banana"})

		results := RecommendMVP([]Recipe{tagged, plantButUntagged}, nil, Constraints{DietTypes: []string{"vegan"}}, 5)

		require.Len(t, results, 1)
		assert.Equal(t, "Salad", results[0].Title)
	})

	t.Run("should skip incomplete recipes", func(t *testing.T) {
		noTitle := mvpRecipe("", []string{"rice"})
		noIngredients := mvpRecipe("Hollow", nil)

		results := RecommendMVP([]Recipe{noTitle, noIngredients}, nil, Constraints{}, 5)

		assert.Empty(t, results)
	})

	t.Run("should truncate to top k", func(t *testing.T) {
		var recipes []Recipe
		for _, name := range []string{"A", "B", "C", "D"} {
			recipes = append(recipes, mvpRecipe(name, []string{"rice"}))
		}

		results := RecommendMVP(recipes, []string{"rice"}, Constraints{}, 2)

		assert.Len(t, results, 2)
	})

	t.Run("should return empty non-nil slice when nothing passes", func(t *testing.T) {
		r := mvpRecipe("Satay", []string{"peanut"})

		results := RecommendMVP([]Recipe{r}, nil, Constraints{ExcludeIngredients: []string{"peanut"}}, 5)

		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}
