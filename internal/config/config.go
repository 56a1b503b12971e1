package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	AllowedOrigin     string
	AppEnv            string
	Provider          string
	APIKey            string
	Model             string
	GenerationTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnvWithDefault("PORT", "5000"),
		AllowedOrigin: getEnvWithDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
		AppEnv:        getEnvWithDefault("APP_ENV", "development"),
		Provider:      strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "gemini")),
	}

	timeout, err := time.ParseDuration(getEnvWithDefault("GENERATION_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.GenerationTimeout = timeout

	switch cfg.Provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if cfg.APIKey == "" {
			return Config{}, errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if cfg.APIKey == "" {
			return Config{}, errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}

	return cfg, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
