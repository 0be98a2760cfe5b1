package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLockoutMaxAttempts = 5
	defaultLockoutCooldown    = 15 * time.Minute
	defaultPasswordMinLength  = 6
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	sessionSecret := os.Getenv("SESSION_SECRET")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if googleID == "" || googleSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	maxAttempts, err := intFromEnv("LOCKOUT_MAX_ATTEMPTS", defaultLockoutMaxAttempts)
	if err != nil {
		return nil, err
	}

	cooldownMinutes, err := intFromEnv("LOCKOUT_COOLDOWN_MINUTES", 0)
	if err != nil {
		return nil, err
	}

	cooldown := defaultLockoutCooldown
	if cooldownMinutes > 0 {
		cooldown = time.Duration(cooldownMinutes) * time.Minute
	}

	minLength, err := intFromEnv("PASSWORD_MIN_LENGTH", defaultPasswordMinLength)
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:        databaseURL,
		SessionSecret:      sessionSecret,
		BaseURL:            baseURL,
		Environment:        environment,
		GoogleClientID:     googleID,
		GoogleClientSecret: googleSecret,
		GithubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GithubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		LockoutMaxAttempts: maxAttempts,
		LockoutCooldown:    cooldown,
		PasswordMinLength:  minLength,
	}, nil
}

// reads an integer environment variable with a fallback default
func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}

	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}

	return value, nil
}
