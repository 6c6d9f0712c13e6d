package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	RedisURL          string
	LogLevel          string
	LogFormat         string
	EmotionAPIURL     string
	EmotionAPIToken   string
	EmotionAPITimeout time.Duration
	OpenAIAPIKey      string
	OpenAIModel       string
	GenerativeRate    float64
	BatchWorkers      int
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		EmotionAPIURL:   getEnv("EMOTION_API_URL", ""),
		EmotionAPIToken: getEnv("EMOTION_API_TOKEN", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	timeoutSecs, err := getEnvInt("EMOTION_API_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("EMOTION_API_TIMEOUT_SECONDS must be positive")
	}
	cfg.EmotionAPITimeout = time.Duration(timeoutSecs) * time.Second

	rate, err := getEnvFloat("GENERATIVE_CALLS_PER_SECOND", 1.0)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("GENERATIVE_CALLS_PER_SECOND must be positive")
	}
	cfg.GenerativeRate = rate

	workers, err := getEnvInt("BATCH_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 || workers > 64 {
		return nil, fmt.Errorf("BATCH_WORKERS must be between 1 and 64")
	}
	cfg.BatchWorkers = workers

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}
