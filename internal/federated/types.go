package federated

import (
	"context"

	"codeberg.org/glowreview/server/glowreview/users"
)

// Claims is the identity attested by the external provider's callback.
type Claims struct {
	Provider    string
	ProviderKey string
	Email       string
	Name        string
}

// Outcome tags how a completed federated login resolved.
type Outcome string

const (
	// signed in through an existing or newly created link to a known account
	OutcomeLinkedExisting Outcome = "linked_existing"

	// a brand new account was created for the claimed email
	OutcomeAccountCreated Outcome = "account_created"
)

// Store is the slice of the user repository the broker needs.
type Store interface {
	FindByExternalLogin(ctx context.Context, provider, providerKey string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	AddExternalLogin(ctx context.Context, userID, provider, providerKey string) error
	CreateWithExternalLogin(ctx context.Context, nu users.NewUser, provider, providerKey string) (*users.User, error)
}

// Broker resolves provider callbacks into local accounts, linking or
// creating them as needed.
type Broker struct {
	store Store
}

// creates the federated login broker
func NewBroker(store Store) *Broker {
	return &Broker{store: store}
}
