package federated

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/logger"
)

// Complete resolves a provider callback into a local account. In order:
// an existing (provider, providerKey) link wins; then a user with the
// claimed email gets the link attached; then a fresh account is created
// together with its link in one transaction. Providers may resend a
// callback, so every step tolerates replay: both deliveries end up at
// the same single user.
func (b *Broker) Complete(ctx context.Context, claims Claims) (*users.User, Outcome, error) {
	if claims.ProviderKey == "" || strings.TrimSpace(claims.Email) == "" {
		return nil, "", ErrMissingClaims
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))

	// direct sign-in through an existing link
	user, err := b.store.FindByExternalLogin(ctx, claims.Provider, claims.ProviderKey)
	if err == nil {
		return user, OutcomeLinkedExisting, nil
	}

	if !errors.Is(err, users.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to resolve external login: %w", err)
	}

	// no link yet; try to attach one to the account owning the email
	user, err = b.store.FindByEmail(ctx, email)

	switch {
	case err == nil:
		return b.linkExisting(ctx, user, claims)

	case errors.Is(err, users.ErrNotFound):
		return b.createAccount(ctx, email, claims)

	default:
		return nil, "", fmt.Errorf("failed to look up account by email: %w", err)
	}
}

func (b *Broker) linkExisting(ctx context.Context, user *users.User, claims Claims) (*users.User, Outcome, error) {
	err := b.store.AddExternalLogin(ctx, user.ID, claims.Provider, claims.ProviderKey)
	if err != nil {
		if errors.Is(err, users.ErrLinkConflict) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("failed to link external login: %w", err)
	}

	logger.Info("external login linked",
		"user_id", user.ID,
		"provider", claims.Provider,
	)

	return user, OutcomeLinkedExisting, nil
}

func (b *Broker) createAccount(ctx context.Context, email string, claims Claims) (*users.User, Outcome, error) {
	fullName := strings.TrimSpace(claims.Name)
	if fullName == "" {
		// fall back to the email local-part as the display name
		fullName, _, _ = strings.Cut(email, "@")
	}

	// no password is set for a federated account, so the password
	// policy does not apply here
	user, err := b.store.CreateWithExternalLogin(ctx, users.NewUser{
		Email:        email,
		PasswordHash: nil,
		FullName:     fullName,
	}, claims.Provider, claims.ProviderKey)

	if err == nil {
		logger.Info("account created from external login",
			"user_id", user.ID,
			"provider", claims.Provider,
		)
		return user, OutcomeAccountCreated, nil
	}

	// a concurrent duplicate callback may have created the account and
	// its link between our lookups; resolve through the link once more
	if errors.Is(err, users.ErrDuplicateEmail) || errors.Is(err, users.ErrLinkConflict) {
		if user, retryErr := b.store.FindByExternalLogin(ctx, claims.Provider, claims.ProviderKey); retryErr == nil {
			return user, OutcomeLinkedExisting, nil
		}

		if errors.Is(err, users.ErrLinkConflict) {
			return nil, "", users.ErrLinkConflict
		}
	}

	return nil, "", fmt.Errorf("%w: %w", ErrAccountCreation, err)
}
