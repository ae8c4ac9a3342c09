package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/api"
	"github.com/kitchenpal/backend/internal/database"
	"github.com/kitchenpal/backend/internal/middleware"
)

// SetupRouter builds the gin engine with middleware, the health probe
// and the /api/v1 routes.
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	logger := zap.L()

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(db, redisClient))

	api.SetupAPI(router, db, redisClient, cfg)

	return router
}

// healthHandler reports dependency status. A down Redis degrades the
// response but keeps it 200; the database is required.
func healthHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := gin.H{"database": "ok"}
		status := http.StatusOK

		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		switch {
		case redisClient == nil:
			checks["redis"] = "disabled"
		default:
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				checks["redis"] = err.Error()
			} else {
				checks["redis"] = "ok"
			}
		}

		body := gin.H{"status": "ok", "checks": checks}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		c.JSON(status, body)
	}
}
