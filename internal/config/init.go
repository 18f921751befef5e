package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Init loads .env (when present) and fails fast on missing required
// settings so the process never comes up half-configured.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal("required environment variable is not set", zap.String("key", key))
		}
	}
}

// PageSize reads PAGE_SIZE, falling back to the given default when the
// variable is absent or not a positive integer.
func PageSize(fallback int) int {
	n, err := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
