package config

import (
	"os"

	"humansudoku/pkg/constants"
)

// Config holds the HTTP server's environment-derived settings.
type Config struct {
	Port string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return &Config{
		Port: getEnv("PORT", constants.DefaultPort),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
