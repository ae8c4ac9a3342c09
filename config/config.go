package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Mood/energy predictor service
	PredictorURL     string
	PredictorTimeout time.Duration

	// Recommendation cache
	RecommendCacheTTL time.Duration
}

// LoadConfig builds a Config from the environment. In development a local
// .env file is loaded first if present. Every value supports a *_FILE
// variant pointing at a Docker secret file, which wins over the plain
// variable.
func LoadConfig() (*Config, error) {
	if IsDevelopment() || IsTest() {
		// Missing .env is fine; explicit env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8000"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "kitchenpal"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		PredictorURL: getEnv("PREDICTOR_URL", ""),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	predictorTimeout, err := getEnvInt("PREDICTOR_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	cfg.PredictorTimeout = time.Duration(predictorTimeout) * time.Second

	cacheTTL, err := getEnvInt("RECOMMEND_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.RecommendCacheTTL = time.Duration(cacheTTL) * time.Second

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// getEnv reads name, preferring a secret file named by name_FILE.
func getEnv(name, fallback string) string {
	if path := os.Getenv(name + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}
