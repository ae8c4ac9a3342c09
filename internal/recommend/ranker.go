package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Composite blend weights. Tunable constants, not derived; they sum to
// 1.0. Coverage and expiring are in [0,1] while nutrition and mood/energy
// are signed in [-1,1], so the composite lands roughly in [-0.45, 1.0]
// and is deliberately not renormalized.
var DefaultWeights = Weights{
	Coverage:   0.30,
	Expiring:   0.25,
	Nutrition:  0.20,
	MoodEnergy: 0.25,
}

// Ranker orchestrates the full pipeline: hard filters, the four
// sub-scorers, the weighted composite, reason/explanation assembly and
// the debug trace. Construct one per predictor; Rank is safe for
// concurrent use because every call keeps its working state local.
type Ranker struct {
	predictor Predictor
	weights   Weights
}

// NewRanker returns a Ranker using the given predictor (nil disables the
// ML path) and the default weights.
func NewRanker(predictor Predictor) *Ranker {
	return &Ranker{predictor: predictor, weights: DefaultWeights}
}

// Rank filters and scores recipes against the pantry and constraints,
// returning survivors sorted by composite score descending. The sort is
// stable, so equal scores keep input order; that input order is the only
// tie-break. All recipes filtered out yields an empty, non-nil slice.
// today anchors the expiry windows.
func (rk *Ranker) Rank(ctx context.Context, recipes []Recipe, pantry []PantryItem, c Constraints, today time.Time) []ScoreResult {
	results := []ScoreResult{}

	for _, r := range recipes {
		if !PassesFilters(r, c) {
			continue
		}

		coverage, matchedCount := scoreCoverage(r.Ingredients, pantry)
		expiring, matchedExpiring := ScoreExpiry(r.Ingredients, pantry, today)
		nutrition, nutritionExpl, nutritionDebug := ScoreNutrition(r, c)
		moodEnergy, moodEnergyExpl, moodEnergyDebug := ScoreMoodEnergy(ctx, r, c, rk.predictor)

		final := rk.weights.Coverage*coverage +
			rk.weights.Expiring*expiring +
			rk.weights.Nutrition*nutrition +
			rk.weights.MoodEnergy*moodEnergy

		results = append(results, ScoreResult{
			RecipeID:    r.ID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Coverage:    coverage,
			Expiring:    expiring,
			Nutrition:   nutrition,
			MoodEnergy:  moodEnergy,
			FinalScore:  final,
			Reason:      buildReason(r, c, coverage, expiring, nutrition, moodEnergy),
			Explanation: buildExplanation(coverage, matchedExpiring, nutritionExpl, moodEnergyExpl),
			Debug: Debug{
				Weights: rk.weights,
				Coverage: CoverageDebug{
					Score:   coverage,
					Matched: matchedCount,
					Total:   len(r.Ingredients),
				},
				Expiring: ExpiringDebug{
					Score:   expiring,
					Matched: matchedExpiring,
				},
				Nutrition:  nutritionDebug,
				MoodEnergy: moodEnergyDebug,
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results
}

// scoreCoverage returns the fraction of recipe ingredients matching some
// pantry item, plus the match count.
func scoreCoverage(ingredients []string, pantry []PantryItem) (float64, int) {
	if len(ingredients) == 0 {
		return 0, 0
	}
	matched := 0
	for _, ing := range ingredients {
		for _, item := range pantry {
			if Matches(ing, item.Name) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(ingredients)), matched
}

// buildReason assembles the compact reason string shown next to a
// suggestion, as opposed to the verbose explanation.
func buildReason(r Recipe, c Constraints, coverage, expiring, nutrition, moodEnergy float64) string {
	var reasons []string
	if coverage >= 0.7 {
		reasons = append(reasons, fmt.Sprintf("has %d%% of ingredients", int(coverage*100)))
	}
	if expiring >= 0.3 {
		reasons = append(reasons, "uses expiring items")
	}
	if r.TimeMinutes != nil && *r.TimeMinutes != 0 {
		reasons = append(reasons, fmt.Sprintf("Quick (%d min)", *r.TimeMinutes))
	}
	if r.Diet != "" {
		reasons = append(reasons, r.Diet)
	} else if len(c.DietTypes) > 0 {
		reasons = append(reasons, "Matching diet")
	}
	if nutrition > 0 {
		reasons = append(reasons, "fits nutrition goal")
	}
	if moodEnergy > 0 {
		reasons = append(reasons, "matches mood/energy")
	}

	if len(reasons) == 0 {
		return "Good match"
	}
	return strings.Join(reasons, ", ")
}

// buildExplanation concatenates the non-empty verbose pieces: coverage
// percentage, deduplicated sorted expiring names, and the two scorer
// explanations.
func buildExplanation(coverage float64, matchedExpiring []string, nutritionExpl, moodEnergyExpl string) string {
	var parts []string
	if coverage != 0 {
		parts = append(parts, fmt.Sprintf("Pantry coverage: %d%%", int(coverage*100)))
	}
	if len(matchedExpiring) > 0 {
		parts = append(parts, "Uses expiring: "+strings.Join(dedupeSorted(matchedExpiring), ", "))
	}
	if nutritionExpl != "" {
		parts = append(parts, nutritionExpl)
	}
	if moodEnergyExpl != "" {
		parts = append(parts, moodEnergyExpl)
	}
	return strings.Join(parts, "; ")
}

func dedupeSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
