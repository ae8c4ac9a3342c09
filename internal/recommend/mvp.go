package recommend

import "sort"

// MVP blend weights. Expiry is a flat placeholder until the pantry model
// carries expirations through this path, so it contributes a constant
// offset and coverage decides the ordering.
const (
	mvpCoverageWeight = 0.6
	mvpExpiryWeight   = 0.4
	mvpExpiryStub     = 0.5
)

// MVPResult is one recommendation from the exact-match recommender.
// Internal scores are intentionally not exposed.
type MVPResult struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	TimeMinutes        *int     `json:"time_minutes"`
	Diet               string   `json:"diet"`
	MissingIngredients []string `json:"missing_ingredients"`
	Cuisine            string   `json:"cuisine"`
	AvgRating          *float64 `json:"avg_rating"`
}

type mvpCandidate struct {
	recipe   Recipe
	ingSet   map[string]bool
	rawScore float64
	final    float64
}

// RecommendMVP is the simpler exact-match recommender. Unlike the ranking
// engine it matches whole normalized names, not substrings, so "pea" and
// "peanut" stay distinct here. Allergies fold into the exclude list
// before calling. Results are sorted by normalized score descending and
// truncated to topK.
func RecommendMVP(recipes []Recipe, pantryNames []string, c Constraints, topK int) []MVPResult {
	pantrySet := normalizedSet(pantryNames)
	allowedCuisines := normalizedSet(c.Cuisines)
	allowedDiets := normalizedSet(c.DietTypes)
	includes := normalizedSet(c.IncludeIngredients)
	excludes := normalizedSet(c.ExcludeIngredients)

	var candidates []mvpCandidate

	for _, r := range recipes {
		if r.Title == "" || len(r.Ingredients) == 0 {
			continue
		}
		ingSet := normalizedSet(r.Ingredients)

		if len(allowedCuisines) > 0 {
			if r.Cuisine == "" || !allowedCuisines[normalizeName(r.Cuisine)] {
				continue
			}
		}
		if !subset(includes, ingSet) {
			continue
		}
		if intersects(excludes, ingSet) {
			continue
		}
		if c.MaxTimeMinutes != nil && r.TimeMinutes != nil && *r.TimeMinutes > *c.MaxTimeMinutes {
			continue
		}
		if len(allowedDiets) > 0 {
			if r.Diet == "" || !allowedDiets[normalizeName(r.Diet)] {
				continue
			}
		}

		candidates = append(candidates, mvpCandidate{recipe: r, ingSet: ingSet})
	}

	if len(candidates) == 0 {
		return []MVPResult{}
	}

	minRaw, maxRaw := 0.0, 0.0
	for i := range candidates {
		coverage := setCoverage(candidates[i].ingSet, pantrySet)
		raw := mvpCoverageWeight*coverage + mvpExpiryWeight*mvpExpiryStub
		candidates[i].rawScore = raw
		if i == 0 || raw < minRaw {
			minRaw = raw
		}
		if i == 0 || raw > maxRaw {
			maxRaw = raw
		}
	}

	// Min-max normalize to [-1, 1]; a degenerate spread is neutral.
	for i := range candidates {
		if maxRaw == minRaw {
			candidates[i].final = 0.0
		} else {
			candidates[i].final = 2*(candidates[i].rawScore-minRaw)/(maxRaw-minRaw) - 1
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].final > candidates[j].final
	})

	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}

	results := make([]MVPResult, 0, len(candidates))
	for _, cand := range candidates {
		results = append(results, MVPResult{
			ID:                 cand.recipe.ID.String(),
			Title:              cand.recipe.Title,
			TimeMinutes:        cand.recipe.TimeMinutes,
			Diet:               cand.recipe.Diet,
			MissingIngredients: missingIngredients(cand.recipe.Ingredients, pantrySet),
			Cuisine:            cand.recipe.Cuisine,
			AvgRating:          cand.recipe.AvgRating,
		})
	}
	return results
}

func normalizedSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[normalizeName(n)] = true
	}
	return set
}

func subset(required, have map[string]bool) bool {
	for r := range required {
		if !have[r] {
			return false
		}
	}
	return true
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

// setCoverage is the exact-match counterpart of the ranking engine's
// coverage: fraction of distinct recipe ingredients present in the
// pantry by whole normalized name.
func setCoverage(ingSet, pantrySet map[string]bool) float64 {
	if len(ingSet) == 0 || len(pantrySet) == 0 {
		return 0.0
	}
	overlap := 0
	for ing := range ingSet {
		if pantrySet[ing] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(ingSet))
}

// missingIngredients keeps the original strings and input order.
func missingIngredients(ingredients []string, pantrySet map[string]bool) []string {
	missing := []string{}
	for _, ing := range ingredients {
		if ing == "" {
			continue
		}
		if !pantrySet[normalizeName(ing)] {
			missing = append(missing, ing)
		}
	}
	return missing
}
