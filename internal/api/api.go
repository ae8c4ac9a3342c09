package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/middleware"
	"github.com/kitchenpal/backend/internal/recommend"
	"github.com/kitchenpal/backend/internal/service"
)

// SetupAPI wires services and handlers onto /api/v1. redisClient may be
// nil; caching and prediction memoization are then disabled. Without a
// configured predictor URL the mood/energy scorer runs on heuristics
// alone.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	v1 := router.Group("/api/v1")
	{
		var predictor recommend.Predictor
		if cfg.PredictorURL != "" {
			predictor = service.NewMoodEnergyService(cfg.PredictorURL, cfg.PredictorTimeout, redisClient)
		}
		recommendations := service.NewRecommendationService(db, redisClient, predictor, cfg.RecommendCacheTTL)

		// Recommendation endpoints fan out to scoring and the predictor,
		// so they carry a per-client rate limit.
		limited := v1.Group("")
		limited.Use(middleware.NewRecommendRateLimiter(redisClient).Middleware())
		NewRecommendHandler(recommendations).RegisterRoutes(limited)

		NewPantryHandler(db).RegisterRoutes(v1)
		NewRecipeHandler(db).RegisterRoutes(v1)
		NewMealLogHandler(db).RegisterRoutes(v1)
	}
}
