package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/model"
)

// MealLogHandler records and lists post-cooking feedback.
type MealLogHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewMealLogHandler(db *gorm.DB) *MealLogHandler {
	return &MealLogHandler{db: db, logger: zap.L().Named("api.meallog")}
}

func (h *MealLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.POST("/log", h.CreateLog)
		chat.GET("/logs", h.ListLogs)
	}
}

func (h *MealLogHandler) CreateLog(c *gin.Context) {
	var req MealLogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := model.MealLog{
		RecipeTitle:  req.RecipeTitle,
		TasteRating:  req.TasteRating,
		LikedTags:    model.JSONBStringArray(req.LikedTags),
		DislikedTags: model.JSONBStringArray(req.DislikedTags),
		FeelAfter:    req.FeelAfter,
		Notes:        req.Notes,
	}
	if req.RecipeID != nil {
		recipeID, err := uuid.Parse(*req.RecipeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id must be a UUID"})
			return
		}
		log.RecipeID = &recipeID
	}
	if req.CookedAt != nil {
		log.CookedAt = *req.CookedAt
	}

	if err := h.db.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save meal log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *MealLogHandler) ListLogs(c *gin.Context) {
	var logs []model.MealLog
	if err := h.db.Order("cooked_at DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
