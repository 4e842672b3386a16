package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds server settings resolved from the environment.
type Config struct {
	Port   string
	DBPath string
}

// Load reads an optional .env file and resolves settings with defaults.
func Load() *Config {
	// .env file is optional in production
	_ = godotenv.Load()

	return &Config{
		Port:   getEnvOrDefault("PORT", "3000"),
		DBPath: getEnvOrDefault("DB_PATH", "finmentor.db"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
