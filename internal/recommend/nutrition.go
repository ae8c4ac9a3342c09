package recommend

import (
	"fmt"
	"strings"
)

// Nutrition goal names.
const (
	GoalHighProtein = "high_protein"
	GoalLowCarb     = "low_carb"
	GoalLowCalorie  = "low_calorie"
)

type thresholdRow struct {
	macro  string
	target float64
	// highIsGood flips the scoring curve: true rewards exceeding the
	// target, false rewards staying under it.
	highIsGood bool
}

// nutritionThresholds is the fixed goal -> threshold table.
var nutritionThresholds = map[string][]thresholdRow{
	GoalHighProtein: {{macro: macroProteinG, target: 30, highIsGood: true}},
	GoalLowCarb:     {{macro: macroCarbsG, target: 35}},
	GoalLowCalorie:  {{macro: macroCalories, target: 550}},
}

// InferNutritionGoal resolves the active nutrition goal: an explicit goal
// wins, then a recognized legacy prioritize_macro value, then a goal
// derived from the stated energy level. Empty means no goal.
func InferNutritionGoal(c Constraints) string {
	if c.NutritionGoal != "" {
		return c.NutritionGoal
	}

	switch c.PrioritizeMacro {
	case GoalHighProtein, GoalLowCarb, GoalLowCalorie:
		return c.PrioritizeMacro
	}

	switch strings.ToLower(c.EnergyLevel) {
	case "high":
		return GoalHighProtein
	case "low":
		return GoalLowCalorie
	}
	return ""
}

// ScoreNutrition scores a recipe's macros against the resolved nutrition
// goal, in [-1, 1]. Missing macros are excluded from the average rather
// than treated as zero; when every required macro is missing the score is
// exactly 0.
func ScoreNutrition(r Recipe, c Constraints) (float64, string, NutritionDebug) {
	goal := InferNutritionGoal(c)
	debug := NutritionDebug{
		Goal:          goal,
		Macros:        map[string]*float64{},
		Components:    map[string]float64{},
		MissingMacros: []string{},
	}

	rows, ok := nutritionThresholds[goal]
	if goal == "" || !ok {
		debug.Explanation = "No nutrition goal specified"
		return 0, debug.Explanation, debug
	}

	debug.Thresholds = map[string]float64{}
	for _, row := range rows {
		debug.Thresholds[row.macro] = row.target
	}

	var components []float64
	var reasons []string

	for _, row := range rows {
		value := r.Macros.Get(row.macro)
		debug.Macros[row.macro] = value
		if value == nil {
			debug.MissingMacros = append(debug.MissingMacros, row.macro)
			continue
		}

		var comp float64
		v, target := *value, row.target
		if row.highIsGood {
			switch {
			case v >= target*1.3:
				comp = 1.0
				reasons = append(reasons, fmt.Sprintf("%s %dg is well above %dg goal", row.macro, int(v), int(target)))
			case v >= target:
				comp = 0.6
				reasons = append(reasons, fmt.Sprintf("%s %dg meets %dg goal", row.macro, int(v), int(target)))
			default:
				comp = -0.5
				reasons = append(reasons, fmt.Sprintf("%s %dg is below %dg goal", row.macro, int(v), int(target)))
			}
		} else {
			switch {
			case v <= target*0.7:
				comp = 1.0
				reasons = append(reasons, fmt.Sprintf("%s %d is well under %d limit", row.macro, int(v), int(target)))
			case v <= target:
				comp = 0.4
				reasons = append(reasons, fmt.Sprintf("%s %d is under %d limit", row.macro, int(v), int(target)))
			default:
				comp = -0.6
				reasons = append(reasons, fmt.Sprintf("%s %d exceeds %d limit", row.macro, int(v), int(target)))
			}
		}

		debug.Components[row.macro] = comp
		components = append(components, comp)
	}

	if len(components) == 0 {
		debug.Explanation = "No nutrition data on recipe"
		return 0, debug.Explanation, debug
	}

	sum := 0.0
	for _, comp := range components {
		sum += comp
	}
	score := clamp(sum / float64(len(components)))

	explanation := "Nutrition goal considered"
	if len(reasons) > 0 {
		explanation = strings.Join(reasons, "; ")
	}
	debug.Score = score
	debug.Explanation = explanation
	return score, explanation, debug
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
