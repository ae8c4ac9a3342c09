package recommend

import (
	"context"
	"fmt"
	"strings"
)

// Requested-mood buckets. A mood outside every bucket is still scored by
// the neutral ML rule, so unrecognized free text degrades gracefully.
var (
	comfortMoods = map[string]bool{"comfort": true, "cozy": true, "hearty": true, "happy": true, "good": true}
	lightMoods   = map[string]bool{"light": true, "fresh": true, "healthy": true}
	focusMoods   = map[string]bool{"focus": true, "post-workout": true, "gym": true, "muscle": true}
)

// heuristicComfortMoods is the narrower bucket the calorie fallback uses;
// "happy"/"good" only participate in the ML mapping.
var heuristicComfortMoods = map[string]bool{"comfort": true, "cozy": true, "hearty": true}

// ScoreMoodEnergy scores how well a recipe's nutrition profile matches
// the requested mood and energy level, in [-1, 1].
//
// Two tiers: when the recipe has calorie data and a predictor is
// available, the external model's mood/energy labels are mapped onto the
// request (confidence-weighted). When the predictor is unavailable,
// fails, or its mapping nets out to exactly zero, fixed macro heuristics
// take over. A predictor failure is recorded in the debug trace and never
// escapes this function.
func ScoreMoodEnergy(ctx context.Context, r Recipe, c Constraints, predictor Predictor) (float64, string, MoodEnergyDebug) {
	mood := strings.ToLower(c.Mood)
	energy := strings.ToLower(c.EnergyLevel)

	calories := r.Macros.Get(macroCalories)
	protein := r.Macros.Get(macroProteinG)
	carbs := r.Macros.Get(macroCarbsG)
	fat := r.Macros.Get(macroFatG)
	sugar := r.Macros.Get(macroSugarG)

	debug := MoodEnergyDebug{
		Mood:        mood,
		Energy:      energy,
		Calories:    calories,
		ProteinG:    protein,
		CarbsG:      carbs,
		FatG:        fat,
		SugarG:      sugar,
		TimeMinutes: r.TimeMinutes,
	}

	score := 0.0
	var reasons []string

	if calories != nil && predictor != nil {
		nutrition := map[string]float64{macroCalories: *calories}
		if protein != nil {
			nutrition[macroProteinG] = *protein
		}
		if carbs != nil {
			nutrition[macroCarbsG] = *carbs
		}
		if fat != nil {
			nutrition[macroFatG] = *fat
		}
		if sugar != nil {
			nutrition[macroSugarG] = *sugar
		}

		moodRes, energyRes, err := predictor.Predict(ctx, nutrition)
		switch {
		case err != nil:
			debug.MLError = err.Error()
		case moodRes != nil && energyRes != nil:
			debug.MLUsed = true
			debug.MLMood = moodRes
			debug.MLEnergy = energyRes

			mlScore := 0.0
			if mood != "" {
				label := strings.ToLower(moodRes.Label)
				conf := moodRes.Confidence
				switch {
				case comfortMoods[mood]:
					if label == "happy" {
						mlScore += 0.5 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s mood (conf: %.0f%%)", label, conf*100))
					} else if label == "sad" {
						mlScore -= 0.3 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s mood - may not match comfort request", label))
					}
				case lightMoods[mood]:
					if label == "neutral" || label == "happy" {
						mlScore += 0.3 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s mood - good for light meal", label))
					}
				default:
					if label == "neutral" {
						mlScore += 0.2 * conf
						reasons = append(reasons, "ML predicts neutral mood")
					}
				}
			}

			if energy != "" {
				label := strings.ToLower(energyRes.Label)
				conf := energyRes.Confidence
				switch energy {
				case "low":
					if strings.Contains(label, "low") || strings.Contains(label, "normal") {
						mlScore += 0.4 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s energy (conf: %.0f%%)", label, conf*100))
					} else {
						mlScore -= 0.2 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s - may be too energizing", label))
					}
				case "high":
					if strings.Contains(label, "burst") || strings.Contains(label, "energy") {
						mlScore += 0.5 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s (conf: %.0f%%)", label, conf*100))
					} else if strings.Contains(label, "normal") {
						mlScore += 0.2 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s energy", label))
					}
				default:
					if strings.Contains(label, "normal") {
						mlScore += 0.3 * conf
						reasons = append(reasons, fmt.Sprintf("ML predicts %s energy", label))
					}
				}
			}

			if mlScore != 0 {
				score = mlScore
			}
		}
	}

	// Heuristic fallback: predictor unavailable, failed, or mapped to
	// exactly zero.
	if !debug.MLUsed || score == 0 {
		switch energy {
		case "low":
			if calories != nil && *calories <= 550 {
				score += 0.3
				reasons = append(reasons, "lighter on calories for low energy")
			}
			if r.TimeMinutes != nil && *r.TimeMinutes != 0 && *r.TimeMinutes <= 30 {
				score += 0.1
				reasons = append(reasons, "quick prep for low energy")
			}
		case "high":
			if protein != nil && *protein >= 25 {
				score += 0.3
				reasons = append(reasons, "higher protein for high energy")
			} else if protein != nil && *protein >= 15 {
				score += 0.1
				reasons = append(reasons, "moderate protein for energy")
			}
		}

		switch {
		case heuristicComfortMoods[mood]:
			if calories != nil && *calories >= 650 {
				score += 0.3
				reasons = append(reasons, "comforting calories")
			} else {
				score -= 0.1
				reasons = append(reasons, "may be lighter than comfort craving")
			}
		case lightMoods[mood]:
			if calories != nil && *calories <= 550 && (fat == nil || *fat <= 20) {
				score += 0.3
				reasons = append(reasons, "light profile")
			} else {
				score -= 0.1
				reasons = append(reasons, "may be heavier than requested light mood")
			}
		case focusMoods[mood]:
			if protein != nil && *protein >= 25 {
				score += 0.3
				reasons = append(reasons, "protein to support focus/recovery")
			} else {
				score -= 0.1
				reasons = append(reasons, "may need more protein for focus/recovery")
			}
		}
	}

	score = clamp(score)
	explanation := "Mood/energy neutral"
	if len(reasons) > 0 {
		explanation = strings.Join(reasons, "; ")
	}
	debug.Score = score
	debug.Explanation = explanation
	return score, explanation, debug
}
