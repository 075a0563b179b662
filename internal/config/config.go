package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Rate limiting.
	RedisAddr           string // empty means the SQLite store is used
	RateLimitFailClosed bool
	CleanupInterval     time.Duration
	RetentionDays       int

	// Knowledge base.
	KnowledgeDir string

	// AI providers.
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	EmbeddingModel  string
	AnthropicAPIKey string
	AnthropicModel  string
	AICallsPerMin   int

	// Cache budget.
	CacheBudgetBytes  int64
	HeapPressureBytes int64

	// Admin auth.
	JWTSecret         string
	AdminPasswordHash string
}

func Load() Config {
	return Config{
		Addr:     envOr("RD_ADDR", ":8080"),
		DBPath:   filepath.Clean(envOr("RD_DB_PATH", "./data/roteiro.db")),
		LogLevel: envOr("RD_LOG_LEVEL", "info"),

		RedisAddr:           os.Getenv("RD_REDIS_ADDR"),
		RateLimitFailClosed: envBool("RD_RATE_LIMIT_FAIL_CLOSED"),
		CleanupInterval:     envDuration("RD_CLEANUP_INTERVAL", time.Hour),
		RetentionDays:       envInt("RD_RETENTION_DAYS", 7),

		KnowledgeDir: envOr("RD_KNOWLEDGE_DIR", "./data/knowledge"),

		OpenAIAPIKey:    os.Getenv("RD_OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("RD_OPENAI_BASE_URL"),
		EmbeddingModel:  envOr("RD_EMBEDDING_MODEL", "text-embedding-3-small"),
		AnthropicAPIKey: os.Getenv("RD_ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("RD_ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		AICallsPerMin:   envInt("RD_AI_CALLS_PER_MIN", 10),

		CacheBudgetBytes:  envInt64("RD_CACHE_BUDGET_BYTES", 64<<20),
		HeapPressureBytes: envInt64("RD_HEAP_PRESSURE_BYTES", 512<<20),

		JWTSecret:         os.Getenv("RD_JWT_SECRET"),
		AdminPasswordHash: os.Getenv("RD_ADMIN_PASSWORD_HASH"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && v > 0 {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
