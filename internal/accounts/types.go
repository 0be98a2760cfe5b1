package accounts

import (
	"context"
	"time"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/auth"
)

// Store is the slice of the user repository this service needs.
type Store interface {
	Create(ctx context.Context, nu users.NewUser) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	RecordFailedLogin(ctx context.Context, userID string, threshold int, cooldown time.Duration) (int, *time.Time, error)
	ResetLockout(ctx context.Context, userID string) error
}

// LockoutPolicy configures the per-account failed-login lockout.
type LockoutPolicy struct {
	MaxAttempts int
	Cooldown    time.Duration
}

// Service verifies local credentials and manages account registration.
type Service struct {
	store   Store
	policy  auth.PasswordPolicy
	lockout LockoutPolicy
}

// creates the authentication service
func NewService(store Store, policy auth.PasswordPolicy, lockout LockoutPolicy) *Service {
	return &Service{
		store:   store,
		policy:  policy,
		lockout: lockout,
	}
}
