package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/model"
	"github.com/kitchenpal/backend/internal/service"
)

// RecipeHandler serves recipe CRUD and the sample-data seeder.
type RecipeHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecipeHandler(db *gorm.DB) *RecipeHandler {
	return &RecipeHandler{db: db, logger: zap.L().Named("api.recipe")}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.POST("/bulk", h.CreateRecipesBulk)
		recipes.POST("/seed", h.SeedRecipes)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	query := h.db

	if diet := c.Query("diet"); diet != "" {
		query = query.Where("LOWER(diet) = ?", strings.ToLower(diet))
	}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("LOWER(cuisine) = ?", strings.ToLower(cuisine))
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := h.db.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := recipeFromRequest(req)
	if err := h.db.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) CreateRecipesBulk(c *gin.Context) {
	var reqs []RecipeCreateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes := make([]model.Recipe, 0, len(reqs))
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		recipes = append(recipes, recipeFromRequest(req))
	}
	if len(recipes) > 0 {
		if err := h.db.Create(&recipes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipes"})
			return
		}
	}
	for i := range recipes {
		ids = append(ids, recipes[i].ID.String())
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created", "count": len(ids), "recipe_ids": ids})
}

// recipeFromRequest canonicalizes ingredient lines and drops blanks.
func recipeFromRequest(req RecipeCreateRequest) model.Recipe {
	ingredients := make(model.JSONBStringArray, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ingredients = append(ingredients, service.Canonicalize(line))
	}

	return model.Recipe{
		Title:       req.Title,
		Ingredients: ingredients,
		TimeMinutes: req.TimeMinutes,
		Diet:        req.Diet,
		Cuisine:     req.Cuisine,
		AvgRating:   req.AvgRating,
		Calories:    req.Calories,
		ProteinG:    req.ProteinG,
		CarbsG:      req.CarbsG,
		FatG:        req.FatG,
		SugarG:      req.SugarG,
	}
}

// seedRecipes is the fixed sample set inserted by SeedRecipes.
var seedRecipes = []model.Recipe{
	{
		Title:       "Spinach Omelette",
		Ingredients: model.JSONBStringArray{"eggs", "spinach", "olive oil", "salt", "black pepper"},
		TimeMinutes: intRef(10),
		Diet:        "vegetarian",
	},
	{
		Title:       "Garlic Butter Salmon",
		Ingredients: model.JSONBStringArray{"salmon", "garlic", "butter", "lemon", "salt", "black pepper"},
		TimeMinutes: intRef(20),
		Diet:        "pescatarian",
	},
	{
		Title:       "Simple Pasta with Tomato Sauce",
		Ingredients: model.JSONBStringArray{"dried pasta", "olive oil", "garlic", "pasta sauce", "salt"},
		TimeMinutes: intRef(20),
		Diet:        "vegetarian",
	},
	{
		Title:       "Fried Rice (Pantry Style)",
		Ingredients: model.JSONBStringArray{"rice", "eggs", "soy sauce", "vegetable oil", "peas and carrots"},
		TimeMinutes: intRef(25),
		Diet:        "vegetarian",
	},
}

// SeedRecipes inserts the sample recipes once; it no-ops when any recipe
// already exists.
func (h *RecipeHandler) SeedRecipes(c *gin.Context) {
	var count int64
	if err := h.db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check recipes"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "already seeded"})
		return
	}

	recipes := make([]model.Recipe, len(seedRecipes))
	copy(recipes, seedRecipes)
	if err := h.db.Create(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "seeded", "count": len(recipes)})
}

func intRef(v int) *int { return &v }
