// Package config loads process configuration from the environment, reading
// a .env file first when one is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogMode  string
	EnableDB bool
	// DatabaseURL is a postgres:// URL or a SQLite file path.
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	RiskModelPath string
	JWTSecret     string
	StaticDir     string
}

// Load reads .env (if any) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LogMode:       getEnv("LOG_MODE", "prod"),
		EnableDB:      strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LLMAPIKey:     os.Getenv("LLM_API_KEY"),
		LLMBaseURL:    os.Getenv("LLM_BASE_URL"),
		LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
		RiskModelPath: os.Getenv("RISK_MODEL_PATH"),
		JWTSecret:     os.Getenv("AUTH_JWT_SECRET"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	cfg.RedisDB = db

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	if cfg.StaticDir == "" {
		cfg.StaticDir = DetectStaticRoot()
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// DetectStaticRoot looks for index.html in the working directory and its
// two parents, returning the working directory when none has one.
func DetectStaticRoot() string {
	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}
	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}
	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}
	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
