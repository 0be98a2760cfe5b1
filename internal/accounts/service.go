package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/logger"
)

// Register creates a local-credential account. The password must satisfy
// the configured policy; the email must not already be registered. The
// caller is expected to establish a session right after (auto sign-in).
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*users.User, error) {
	if issues := s.policy(password); len(issues) > 0 {
		return nil, &WeakPasswordError{Issues: issues}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Create(ctx, users.NewUser{
		Email:        email,
		PasswordHash: &hash,
		FullName:     fullName,
	})

	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID)

	return user, nil
}

// Authenticate verifies the email/password pair and enforces the lockout
// policy. Every failure path except lockout collapses into
// ErrInvalidCredentials so callers cannot probe which factor failed.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			logger.Warn("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if isLocked(user, time.Now()) {
		logger.Warn("login rejected: account locked", "user_id", user.ID)
		return nil, ErrLockedOut
	}

	if user.PasswordHash == nil {
		// federated-only account, no local credential to verify
		logger.Warn("login rejected: no local credential", "user_id", user.ID)
		return nil, ErrNotAllowed
	}

	if !auth.CheckPassword(password, *user.PasswordHash) {
		attempts, lockedUntil, recErr := s.store.RecordFailedLogin(
			ctx, user.ID, s.lockout.MaxAttempts, s.lockout.Cooldown,
		)
		if recErr != nil {
			return nil, fmt.Errorf("failed to record login failure: %w", recErr)
		}

		if lockedUntil != nil && time.Now().Before(*lockedUntil) {
			logger.Warn("account locked out",
				"user_id", user.ID,
				"failed_attempts", attempts,
			)
			return nil, ErrLockedOut
		}

		logger.Warn("login failed: wrong password",
			"user_id", user.ID,
			"failed_attempts", attempts,
		)
		return nil, ErrInvalidCredentials
	}

	if err := s.store.ResetLockout(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to reset lockout: %w", err)
	}

	logger.Info("user authenticated", "user_id", user.ID)

	return user, nil
}

func isLocked(user *users.User, now time.Time) bool {
	return user.LockedUntil != nil && now.Before(*user.LockedUntil)
}
