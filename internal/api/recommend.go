package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kitchenpal/backend/internal/recommend"
	"github.com/kitchenpal/backend/internal/service"
)

const defaultSuggestionLimit = 5

// RecommendHandler serves the recommendation surface: structured chat
// criteria, free-text chat, the MVP recommender and the raw coverage
// report.
type RecommendHandler struct {
	recommendations *service.RecommendationService
	logger          *zap.Logger
}

func NewRecommendHandler(recommendations *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		recommendations: recommendations,
		logger:          zap.L().Named("api.recommend"),
	}
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.POST("/recipes", h.ChatRecipes)
		chat.POST("/message", h.ChatMessage)
	}
	router.POST("/recommend", h.Recommend)
	// Not under /recipes: a static segment there would collide with the
	// /recipes/:id wildcard.
	router.GET("/recommend/coverage", h.MatchByCoverage)
}

// ChatRecipes handles structured criteria and returns ranked suggestions
// with a natural-language reply.
func (h *RecommendHandler) ChatRecipes(c *gin.Context) {
	var req ChatRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	constraints := recommend.Constraints{
		Mood:               req.Mood,
		EnergyLevel:        req.Energy,
		IncludeIngredients: req.IncludeIngredients,
		ExcludeIngredients: req.ExcludeIngredients,
		MaxTimeMinutes:     req.MaxTimeMinutes,
		NutritionGoal:      req.NutritionGoal,
	}
	if req.Diet != "" {
		constraints.DietTypes = []string{req.Diet}
	}

	h.respondWithSuggestions(c, constraints)
}

// ChatMessage parses constraints out of a free-text message and runs the
// same pipeline as ChatRecipes.
func (h *RecommendHandler) ChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	constraints := service.ParseConstraints(req.Message)
	h.respondWithSuggestions(c, constraints)
}

func (h *RecommendHandler) respondWithSuggestions(c *gin.Context, constraints recommend.Constraints) {
	results, err := h.recommendations.ChatRecipes(c.Request.Context(), constraints, defaultSuggestionLimit)
	switch {
	case errors.Is(err, service.ErrNoRecipes):
		c.JSON(http.StatusOK, ChatRecipesResponse{
			Reply:   "I didn't find any recipes in the database yet. Add some recipes first!",
			Recipes: []RecipeSuggestion{},
		})
		return
	case errors.Is(err, service.ErrNoPantry):
		c.JSON(http.StatusOK, ChatRecipesResponse{
			Reply:   "Your pantry is empty. Add some items and I'll suggest recipes that use them.",
			Recipes: []RecipeSuggestion{},
		})
		return
	case err != nil:
		h.logger.Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, ChatRecipesResponse{
			Reply:   "I couldn't find recipes that match your criteria. Try different filters!",
			Recipes: []RecipeSuggestion{},
		})
		return
	}

	suggestions := make([]RecipeSuggestion, 0, len(results))
	for i := range results {
		r := results[i]
		suggestions = append(suggestions, RecipeSuggestion{
			RecipeID:    r.RecipeID.String(),
			Title:       r.Title,
			Reason:      r.Reason,
			TimeMinutes: r.TimeMinutes,
			Explanation: r.Explanation,
			Debug:       &r.Debug,
		})
	}

	c.JSON(http.StatusOK, ChatRecipesResponse{
		Reply:   buildReply(len(suggestions), constraints),
		Recipes: suggestions,
	})
}

// buildReply composes the one-line summary shown above the suggestions.
func buildReply(count int, constraints recommend.Constraints) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d recipe(s) that match your request. ", count)
	if constraints.MaxTimeMinutes != nil && *constraints.MaxTimeMinutes != 0 {
		fmt.Fprintf(&b, "All are under %d minutes. ", *constraints.MaxTimeMinutes)
	}
	if len(constraints.DietTypes) > 0 {
		fmt.Fprintf(&b, "Based on your %s preference. ", strings.Join(constraints.DietTypes, ", "))
	}
	if constraints.NutritionGoal != "" {
		fmt.Fprintf(&b, "Prioritizing %s. ", strings.ReplaceAll(constraints.NutritionGoal, "_", " "))
	}
	b.WriteString("Check them out below!")
	return b.String()
}

// Recommend serves the MVP recommender: exact-name coverage with missing
// ingredient lists.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	constraints := recommend.Constraints{
		Cuisines:           req.Cuisine,
		DietTypes:          req.DietTypes,
		IncludeIngredients: req.IncludeIngredients,
		ExcludeIngredients: req.ExcludeIngredients,
		MaxTimeMinutes:     req.MaxTimeMinutes,
	}

	results, err := h.recommendations.RecommendMVP(c.Request.Context(), constraints, limit)
	if err != nil {
		h.logger.Error("mvp recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// MatchByCoverage reports canonicalized pantry coverage per recipe.
func (h *RecommendHandler) MatchByCoverage(c *gin.Context) {
	minCoverage := 0.3
	if raw := c.Query("min_coverage"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_coverage must be a number"})
			return
		}
		minCoverage = parsed
	}

	results, err := h.recommendations.MatchByCoverage(c.Request.Context(), minCoverage)
	if err != nil {
		h.logger.Error("coverage match failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute coverage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
