package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/router"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds a server with the full route table. redisClient may be nil.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		cfg:    cfg,
		engine: router.SetupRouter(db, redisClient, cfg),
		logger: zap.L(),
	}
}

// Start begins serving and blocks until the listener stops. Use Stop for
// graceful shutdown.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", s.cfg.ServerHost, s.cfg.ServerPort),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("server listening", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and closes the listener.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.logger.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
