package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	Addr   string // listen address
	DBPath string // SQLite database file
	APIKey string // shared secret for /api/ routes; auto-generated when empty
}

// Load reads settings from a .env file (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug("no .env file, using environment", "error", err)
	}

	return &Config{
		Addr:   getEnv("GOVDASH_ADDR", ":8080"),
		DBPath: getEnv("GOVDASH_DB", "amendments.db"),
		APIKey: os.Getenv("GOVDASH_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
