package accounts

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory stand-in for the user repository
type fakeStore struct {
	mu      sync.Mutex
	byEmail map[string]*users.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]*users.User{}}
}

func (f *fakeStore) Create(_ context.Context, nu users.NewUser) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(nu.Email)

	if _, exists := f.byEmail[email]; exists {
		return nil, users.ErrDuplicateEmail
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: nu.PasswordHash,
		FullName:     nu.FullName,
		JoinDate:     time.Now(),
	}
	f.byEmail[email] = user

	return user, nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, exists := f.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, users.ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (f *fakeStore) RecordFailedLogin(_ context.Context, userID string, threshold int, cooldown time.Duration) (int, *time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.byEmail {
		if user.ID != userID {
			continue
		}

		user.FailedAttempts++
		if user.FailedAttempts >= threshold {
			until := time.Now().Add(cooldown)
			user.LockedUntil = &until
		}

		return user.FailedAttempts, user.LockedUntil, nil
	}

	return 0, nil, users.ErrNotFound
}

func (f *fakeStore) ResetLockout(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.byEmail {
		if user.ID == userID {
			user.FailedAttempts = 0
			user.LockedUntil = nil
		}
	}

	return nil
}

func newTestService(store Store) *Service {
	return NewService(store, auth.DefaultPasswordPolicy(6), LockoutPolicy{
		MaxAttempts: 3,
		Cooldown:    15 * time.Minute,
	})
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	user, err := svc.Register(context.Background(), "a@x.com", "abc!23", "Ada")

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ada", user.FullName)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "abc!23", *user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "other!1", "")

	assert.ErrorIs(t, err, users.ErrDuplicateEmail)
	assert.Len(t, store.byEmail, 1, "no second user may be created")
}

func TestRegister_WeakPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "a@x.com", "ABC", "")

	var weak *WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Len(t, weak.Issues, 3)
	assert.Empty(t, store.byEmail, "rejected registration must not persist a user")
}

func TestAuthenticate_Success(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	registered, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "a@x.com", "abc!23")

	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticate_EmailIsCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "A@X.COM", "abc!23")

	assert.NoError(t, err)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "abc!23")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong!")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_FederatedOnlyAccount(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := store.Create(context.Background(), users.NewUser{
		Email:        "sso@x.com",
		PasswordHash: nil,
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "sso@x.com", "anything")

	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestAuthenticate_LockoutScenario(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store) // threshold 3

	_, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// the attempt that crosses the threshold reports the lockout
	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrLockedOut)

	// the correct password is rejected while the cooldown runs
	_, err = svc.Authenticate(context.Background(), "a@x.com", "abc!23")
	assert.ErrorIs(t, err, ErrLockedOut)
}

func TestAuthenticate_SucceedsAfterCooldown(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	user, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	// simulate an expired cooldown
	past := time.Now().Add(-1 * time.Minute)
	store.byEmail["a@x.com"].FailedAttempts = 3
	store.byEmail["a@x.com"].LockedUntil = &past

	signedIn, err := svc.Authenticate(context.Background(), "a@x.com", "abc!23")

	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)
	assert.Zero(t, store.byEmail["a@x.com"].FailedAttempts, "success must reset the counter")
	assert.Nil(t, store.byEmail["a@x.com"].LockedUntil)
}

func TestAuthenticate_SuccessResetsCounter(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "a@x.com", "abc!23", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "abc!23")
	require.NoError(t, err)

	assert.Zero(t, store.byEmail["a@x.com"].FailedAttempts)
}
