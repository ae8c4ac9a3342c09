package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validSSLModes = map[string]bool{
	"disable":     true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// ValidateConfig checks the assembled Config for values that would only
// fail later, at connect time, with a worse error.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.ServerPort)}.Error())
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		errs = append(errs, ValidationError{Field: "DB_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.DBPort)}.Error())
	}
	if !validSSLModes[cfg.DBSSLMode] {
		errs = append(errs, ValidationError{Field: "DB_SSL_MODE", Message: fmt.Sprintf("unknown mode %q", cfg.DBSSLMode)}.Error())
	}

	if cfg.RedisURL != "" {
		if !strings.HasPrefix(cfg.RedisURL, "redis://") && !strings.HasPrefix(cfg.RedisURL, "rediss://") {
			errs = append(errs, ValidationError{Field: "REDIS_URL", Message: "must start with redis:// or rediss://"}.Error())
		}
	}

	if cfg.PredictorURL != "" {
		u, err := url.Parse(cfg.PredictorURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{Field: "PREDICTOR_URL", Message: fmt.Sprintf("not an absolute URL: %q", cfg.PredictorURL)}.Error())
		}
	}

	if cfg.PredictorTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "PREDICTOR_TIMEOUT_SECONDS", Message: "must be positive"}.Error())
	}
	if cfg.RecommendCacheTTL < 0 {
		errs = append(errs, ValidationError{Field: "RECOMMEND_CACHE_TTL_SECONDS", Message: "must not be negative"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
