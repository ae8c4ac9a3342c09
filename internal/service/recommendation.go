package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/model"
	"github.com/kitchenpal/backend/internal/recommend"
)

// Sentinel conditions the HTTP layer turns into friendly replies.
var (
	ErrNoRecipes = errors.New("no recipes available")
	ErrNoPantry  = errors.New("pantry is empty")
)

const recommendCachePref = "recommend:chat:"

// RecommendationService loads recipes and pantry rows, adapts them onto
// the scoring engine and caches ranked responses.
type RecommendationService struct {
	db       *gorm.DB
	redis    *redis.Client
	ranker   *recommend.Ranker
	cacheTTL time.Duration
	logger   *zap.Logger
	// now is swapped in tests for deterministic expiry windows.
	now func() time.Time
}

// NewRecommendationService wires the service. redisClient may be nil to
// disable response caching.
func NewRecommendationService(db *gorm.DB, redisClient *redis.Client, predictor recommend.Predictor, cacheTTL time.Duration) *RecommendationService {
	return &RecommendationService{
		db:       db,
		redis:    redisClient,
		ranker:   recommend.NewRanker(predictor),
		cacheTTL: cacheTTL,
		logger:   zap.L().Named("recommendation"),
		now:      time.Now,
	}
}

// ChatRecipes runs the full scoring pipeline against everything in the
// database and returns the top-k suggestions. ErrNoRecipes and
// ErrNoPantry report the two empty-database cases separately so the chat
// layer can phrase its reply.
func (s *RecommendationService) ChatRecipes(ctx context.Context, c recommend.Constraints, topK int) ([]recommend.ScoreResult, error) {
	recipes, err := s.loadRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}

	pantry, err := s.loadPantry(ctx)
	if err != nil {
		return nil, err
	}
	if len(pantry) == 0 {
		return nil, ErrNoPantry
	}

	cacheKey, cacheable := chatCacheKey(c, topK)
	if cacheable {
		if cached, ok := s.cachedResults(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	results := s.ranker.Rank(ctx, recipes, pantry, c, s.now())
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}

	if cacheable {
		s.storeResults(ctx, cacheKey, results)
	}
	return results, nil
}

// RecommendMVP runs the exact-match recommender over the same tables.
func (s *RecommendationService) RecommendMVP(ctx context.Context, c recommend.Constraints, topK int) ([]recommend.MVPResult, error) {
	recipes, err := s.loadRecipes(ctx)
	if err != nil {
		return nil, err
	}

	var items []model.PantryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load pantry items: %w", err)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	return recommend.RecommendMVP(recipes, names, c, topK), nil
}

// CoverageMatch is one row of the canonicalized pantry-coverage report.
type CoverageMatch struct {
	RecipeID string   `json:"recipe_id"`
	Title    string   `json:"title"`
	Coverage float64  `json:"coverage"`
	Have     []string `json:"have"`
	Missing  []string `json:"missing"`
}

// MatchByCoverage ranks recipes by canonicalized exact-token pantry
// coverage, dropping those under minCoverage. Ties break on fewer missing
// ingredients, then title.
func (s *RecommendationService) MatchByCoverage(ctx context.Context, minCoverage float64) ([]CoverageMatch, error) {
	recipes, err := s.loadRecipeRows(ctx)
	if err != nil {
		return nil, err
	}

	var items []model.PantryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load pantry items: %w", err)
	}
	pantry := make(map[string]bool, len(items))
	for _, item := range items {
		pantry[Canonicalize(item.Name)] = true
	}

	out := []CoverageMatch{}
	for _, r := range recipes {
		if len(r.Ingredients) == 0 {
			continue
		}
		have := []string{}
		missing := []string{}
		for _, ing := range r.Ingredients {
			canonical := Canonicalize(ing)
			if pantry[canonical] {
				have = append(have, canonical)
			} else {
				missing = append(missing, canonical)
			}
		}
		coverage := float64(len(have)) / float64(len(r.Ingredients))
		if coverage >= minCoverage {
			out = append(out, CoverageMatch{
				RecipeID: r.ID.String(),
				Title:    r.Title,
				Coverage: coverage,
				Have:     have,
				Missing:  missing,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Coverage != out[j].Coverage {
			return out[i].Coverage > out[j].Coverage
		}
		if len(out[i].Missing) != len(out[j].Missing) {
			return len(out[i].Missing) < len(out[j].Missing)
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (s *RecommendationService) loadRecipes(ctx context.Context) ([]recommend.Recipe, error) {
	rows, err := s.loadRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	recipes := make([]recommend.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, rows[i].ToScoring())
	}
	return recipes, nil
}

func (s *RecommendationService) loadRecipeRows(ctx context.Context) ([]model.Recipe, error) {
	var rows []model.Recipe
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	return rows, nil
}

func (s *RecommendationService) loadPantry(ctx context.Context) ([]recommend.PantryItem, error) {
	var items []model.PantryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load pantry items: %w", err)
	}
	pantry := make([]recommend.PantryItem, 0, len(items))
	for i := range items {
		pantry = append(pantry, items[i].ToScoring())
	}
	return pantry, nil
}

// chatCacheKey hashes the constraints and topK. Not cacheable when
// hashing fails.
func chatCacheKey(c recommend.Constraints, topK int) (string, bool) {
	payload, err := json.Marshal(struct {
		Constraints recommend.Constraints `json:"constraints"`
		TopK        int                   `json:"top_k"`
	}{c, topK})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(payload)
	return recommendCachePref + hex.EncodeToString(sum[:]), true
}

func (s *RecommendationService) cachedResults(ctx context.Context, key string) ([]recommend.ScoreResult, bool) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var results []recommend.ScoreResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (s *RecommendationService) storeResults(ctx context.Context, key string, results []recommend.ScoreResult) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache recommendations", zap.Error(err))
	}
}
