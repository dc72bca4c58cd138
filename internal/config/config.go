package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App AppConfig
	Log LogConfig
}

type AppConfig struct {
	Env  string
	Name string
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Name: getEnv("APP_NAME", "ridematch"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
			Output: strings.ToLower(getEnv("LOG_OUTPUT", "stderr")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	switch c.Log.Output {
	case "stderr", "stdout":
	default:
		return fmt.Errorf("LOG_OUTPUT must be stderr or stdout, got %q", c.Log.Output)
	}
	if c.Log.Output == "stdout" && c.App.Env == "production" {
		return fmt.Errorf("LOG_OUTPUT=stdout would mix logs into results in production")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
