package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/database"
)

// Runs schema migration against the configured database and exits.
// Useful in deploy pipelines where the API should not migrate on boot.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if _, err := database.New(cfg); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migration complete")
}
