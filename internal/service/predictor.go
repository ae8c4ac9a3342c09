package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kitchenpal/backend/internal/recommend"
)

const (
	predictPath      = "/api/ml/predict-mood-energy"
	predictCacheTTL  = time.Hour
	predictCachePref = "ml:predict:"
)

// MoodEnergyService calls the external mood/energy model over HTTP. It
// implements recommend.Predictor. Predictions for identical nutrition
// profiles are memoized in Redis for an hour; a nil Redis client simply
// disables memoization.
type MoodEnergyService struct {
	baseURL string
	client  *http.Client
	redis   *redis.Client
	logger  *zap.Logger
}

// NewMoodEnergyService builds the predictor client. baseURL is the model
// server root without the path.
func NewMoodEnergyService(baseURL string, timeout time.Duration, redisClient *redis.Client) *MoodEnergyService {
	return &MoodEnergyService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		redis:   redisClient,
		logger:  zap.L().Named("predictor"),
	}
}

type predictRequest struct {
	Nutrition map[string]float64 `json:"nutrition"`
}

type predictResponse struct {
	Mood   *recommend.Prediction `json:"mood"`
	Energy *recommend.Prediction `json:"energy"`
}

// Predict sends the present macros to the model server and returns its
// mood and energy labels. Either prediction may be nil when the model
// declines; transport and decode failures come back as errors for the
// caller's fallback path.
func (s *MoodEnergyService) Predict(ctx context.Context, nutrition map[string]float64) (*recommend.Prediction, *recommend.Prediction, error) {
	body, err := json.Marshal(predictRequest{Nutrition: nutrition})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	cacheKey := predictCacheKey(body)
	if cached, ok := s.cachedPrediction(ctx, cacheKey); ok {
		return cached.Mood, cached.Energy, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("prediction service returned %d: %s", resp.StatusCode, data)
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	s.storePrediction(ctx, cacheKey, result)
	return result.Mood, result.Energy, nil
}

// predictCacheKey hashes the request body. json.Marshal emits map keys
// sorted, so identical macro sets share a key.
func predictCacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return predictCachePref + hex.EncodeToString(sum[:])
}

func (s *MoodEnergyService) cachedPrediction(ctx context.Context, key string) (predictResponse, bool) {
	if s.redis == nil {
		return predictResponse{}, false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return predictResponse{}, false
	}
	var cached predictResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return predictResponse{}, false
	}
	return cached, true
}

func (s *MoodEnergyService) storePrediction(ctx context.Context, key string, result predictResponse) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, predictCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache prediction", zap.Error(err))
	}
}
