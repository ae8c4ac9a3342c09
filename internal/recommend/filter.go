package recommend

import "strings"

// Ingredient keyword sets for diet inference.
var (
	meatKeywords  = []string{"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausage", "meat"}
	fishKeywords  = []string{"fish", "salmon", "tuna", "shrimp", "seafood", "cod", "tilapia"}
	dairyKeywords = []string{"milk", "cheese", "butter", "cream", "yogurt"}
)

func anyKeyword(ingredients []string, keywords []string) bool {
	for _, ing := range ingredients {
		ing = strings.ToLower(ing)
		for _, kw := range keywords {
			if strings.Contains(ing, kw) {
				return true
			}
		}
	}
	return false
}

// InferDiet derives a diet tag from ingredient keywords: "vegan" when no
// meat, fish or dairy keyword is present, "vegetarian" when only dairy
// appears, "pescatarian" when fish appears without meat. Anything else is
// "" — a recipe containing meat never auto-infers "omnivore".
func InferDiet(ingredients []string) string {
	hasMeat := anyKeyword(ingredients, meatKeywords)
	hasFish := anyKeyword(ingredients, fishKeywords)
	hasDairy := anyKeyword(ingredients, dairyKeywords)

	switch {
	case !hasMeat && !hasFish && !hasDairy:
		return "vegan"
	case !hasMeat && !hasFish:
		return "vegetarian"
	case !hasMeat && hasFish:
		return "pescatarian"
	}
	return ""
}

// PassesFilters applies the hard eligibility stages in order: ingredient
// presence, time limit, diet (explicit tag or inferred), required
// ingredients, excluded ingredients. A recipe failing any stage is
// discarded outright; no score is computed for it. Each stage is an
// independent predicate, so the surviving set does not depend on stage
// order — the ordering only short-circuits the cheap checks first.
func PassesFilters(r Recipe, c Constraints) bool {
	if len(r.Ingredients) == 0 {
		return false
	}

	if c.MaxTimeMinutes != nil && *c.MaxTimeMinutes != 0 &&
		r.TimeMinutes != nil && *r.TimeMinutes != 0 &&
		*r.TimeMinutes > *c.MaxTimeMinutes {
		return false
	}

	if len(c.DietTypes) > 0 {
		allowed := make(map[string]bool, len(c.DietTypes))
		for _, d := range c.DietTypes {
			allowed[strings.ToLower(d)] = true
		}
		if r.Diet == "" || !allowed[strings.ToLower(r.Diet)] {
			inferred := InferDiet(r.Ingredients)
			if inferred == "" || !allowed[inferred] {
				return false
			}
		}
	}

	if len(c.IncludeIngredients) > 0 && !ContainsAll(r.Ingredients, c.IncludeIngredients) {
		return false
	}

	if len(c.ExcludeIngredients) > 0 && ContainsAny(r.Ingredients, c.ExcludeIngredients) {
		return false
	}

	return true
}
