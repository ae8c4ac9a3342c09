package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/database"
	"github.com/kitchenpal/backend/internal/model"
	"github.com/kitchenpal/backend/internal/service"
)

type seedRecipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
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

// Bulk-imports recipes from a JSON file. Ingredient lines are
// canonicalized the same way the API canonicalizes them, so imported
// recipes match pantry items on the coverage report.
func main() {
	path := flag.String("file", "recipes.json", "path to a JSON array of recipes")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	data, err := os.ReadFile(*path)
	if err != nil {
		logger.Fatal("failed to read seed file", zap.Error(err))
	}
	var seeds []seedRecipe
	if err := json.Unmarshal(data, &seeds); err != nil {
		logger.Fatal("failed to parse seed file", zap.Error(err))
	}
	if len(seeds) == 0 {
		logger.Info("seed file is empty, nothing to do")
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	recipes := make([]model.Recipe, 0, len(seeds))
	for _, s := range seeds {
		ingredients := make(model.JSONBStringArray, 0, len(s.Ingredients))
		for _, line := range s.Ingredients {
			ingredients = append(ingredients, service.Canonicalize(line))
		}
		recipes = append(recipes, model.Recipe{
			Title:       s.Title,
			Ingredients: ingredients,
			Steps:       model.JSONBStringArray(s.Steps),
			TimeMinutes: s.TimeMinutes,
			Diet:        s.Diet,
			Cuisine:     s.Cuisine,
			AvgRating:   s.AvgRating,
			Calories:    s.Calories,
			ProteinG:    s.ProteinG,
			CarbsG:      s.CarbsG,
			FatG:        s.FatG,
			SugarG:      s.SugarG,
		})
	}

	if err := db.Create(&recipes).Error; err != nil {
		logger.Fatal("failed to insert recipes", zap.Error(err))
	}
	logger.Info("seeded recipes", zap.Int("count", len(recipes)))
}
