package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URL", "postgres://localhost/glowreview_test")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "google-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "google-secret")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.LockoutMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LockoutCooldown)
	assert.Equal(t, 6, cfg.PasswordMinLength)
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOCKOUT_MAX_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_COOLDOWN_MINUTES", "30")
	t.Setenv("PASSWORD_MIN_LENGTH", "10")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.LockoutMaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.LockoutCooldown)
	assert.Equal(t, 10, cfg.PasswordMinLength)
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}

func TestLoadEnvironmentVariables_MissingGoogleCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}

func TestLoadEnvironmentVariables_BadInteger(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOCKOUT_MAX_ATTEMPTS", "many")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}
