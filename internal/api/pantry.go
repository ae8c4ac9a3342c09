package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/model"
)

// PantryHandler owns the pantry item CRUD plus the consume/restock
// quantity operations.
type PantryHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPantryHandler(db *gorm.DB) *PantryHandler {
	return &PantryHandler{db: db, logger: zap.L().Named("api.pantry")}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.GET("", h.ListItems)
		items.POST("", h.CreateItem)
		items.POST("/bulk", h.CreateItemsBulk)
		items.PATCH("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
		items.POST("/:id/consume", h.ConsumeItem)
		items.POST("/:id/restock", h.RestockItem)
	}
}

func (h *PantryHandler) ListItems(c *gin.Context) {
	var items []model.PantryItem
	if err := h.db.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PantryHandler) CreateItem(c *gin.Context) {
	var req ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := itemFromRequest(req)
	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *PantryHandler) CreateItemsBulk(c *gin.Context) {
	var reqs []ItemCreateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]model.PantryItem, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, itemFromRequest(req))
	}
	if len(items) > 0 {
		if err := h.db.Create(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create items"})
			return
		}
	}
	c.JSON(http.StatusCreated, items)
}

// itemFromRequest applies the quick-add defaults: category "pantry",
// quantity 1, purchase date today.
func itemFromRequest(req ItemCreateRequest) model.PantryItem {
	item := model.PantryItem{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          1,
		Unit:              req.Unit,
		PurchaseDate:      req.PurchaseDate,
		ExpirationDate:    req.ExpirationDate,
		EstimatedCalories: req.EstimatedCalories,
		EstimatedProteinG: req.EstimatedProteinG,
		EstimatedCarbsG:   req.EstimatedCarbsG,
		EstimatedFatG:     req.EstimatedFatG,
	}
	if item.Category == "" {
		item.Category = "pantry"
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if item.PurchaseDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		item.PurchaseDate = &today
	}
	return item
}

func (h *PantryHandler) UpdateItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
		return
	}

	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.PurchaseDate != nil {
		item.PurchaseDate = req.PurchaseDate
	}
	if req.ExpirationDate != nil {
		item.ExpirationDate = req.ExpirationDate
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PantryHandler) DeleteItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": item.ID})
}

// ConsumeItem decreases quantity by the requested amount, never below
// zero. Negative amounts are treated as zero.
func (h *PantryHandler) ConsumeItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
		return
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount := req.Amount
	if amount < 0 {
		amount = 0
	}
	item.Quantity -= amount
	if item.Quantity < 0 {
		item.Quantity = 0
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RestockItem increases quantity by the requested amount.
func (h *PantryHandler) RestockItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
		return
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount > 0 {
		item.Quantity += req.Amount
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PantryHandler) findItem(c *gin.Context) (model.PantryItem, bool) {
	var item model.PantryItem
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return item, false
	}
	return item, true
}
