package config

import "time"

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	DatabaseURL   string
	SessionSecret string
	BaseURL       string
	Environment   string

	GoogleClientID     string
	GoogleClientSecret string
	GithubClientID     string
	GithubClientSecret string

	// account lockout policy
	LockoutMaxAttempts int
	LockoutCooldown    time.Duration

	// minimum password length enforced by the default password policy
	PasswordMinLength int
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
