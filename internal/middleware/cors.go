package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// frontendOrigins are the dev frontend addresses, local and on the
// Docker network.
var frontendOrigins = []string{
	"http://localhost:5173",
	"http://frontend:5173",
}

// CORS allows cross-origin requests from the frontend, with credentials.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     frontendOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
