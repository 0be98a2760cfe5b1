package access

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/internal/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type membership struct {
	roleID string
	userID string
}

// in-memory stand-in for the role repository; it counts writes so tests
// can assert that unchanged memberships are never rewritten
type fakeStore struct {
	mu      sync.Mutex
	roles   map[string]*roles.Role // by id
	members map[membership]bool

	addCalls    int
	removeCalls int
	failReads   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roles:   map[string]*roles.Role{},
		members: map[membership]bool{},
	}
}

func (f *fakeStore) addRole(id, name string) *roles.Role {
	role := &roles.Role{ID: id, Name: name}
	f.roles[id] = role
	return role
}

func (f *fakeStore) FindByName(_ context.Context, name string) (*roles.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, role := range f.roles {
		if role.Name == name {
			return role, nil
		}
	}

	return nil, roles.ErrRoleNotFound
}

func (f *fakeStore) FindByID(_ context.Context, roleID string) (*roles.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	role, exists := f.roles[roleID]
	if !exists {
		return nil, roles.ErrRoleNotFound
	}

	return role, nil
}

func (f *fakeStore) AddMember(_ context.Context, roleID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.addCalls++
	f.members[membership{roleID, userID}] = true
	return nil
}

func (f *fakeStore) RemoveMember(_ context.Context, roleID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removeCalls++
	delete(f.members, membership{roleID, userID})
	return nil
}

func (f *fakeStore) ListMemberIDs(_ context.Context, roleID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := []string{}
	for m := range f.members {
		if m.roleID == roleID {
			ids = append(ids, m.userID)
		}
	}

	sort.Strings(ids)
	return ids, nil
}

func (f *fakeStore) UserHasRole(_ context.Context, userID, roleName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failReads {
		return false, errors.New("store unavailable")
	}

	for _, role := range f.roles {
		if role.Name == roleName {
			return f.members[membership{role.ID, userID}], nil
		}
	}

	return false, nil
}

func TestAssignRole_Idempotent(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	gate := NewGate(store)

	require.NoError(t, gate.AssignRole(context.Background(), "u1", "Admin"))
	require.NoError(t, gate.AssignRole(context.Background(), "u1", "Admin"))

	memberIDs, err := store.ListMemberIDs(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, memberIDs)
}

func TestAssignRole_UnknownRole(t *testing.T) {
	gate := NewGate(newFakeStore())

	err := gate.AssignRole(context.Background(), "u1", "Ghost")

	assert.ErrorIs(t, err, roles.ErrRoleNotFound)
}

func TestRevokeRole_UnheldIsNoOp(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	gate := NewGate(store)

	assert.NoError(t, gate.RevokeRole(context.Background(), "u1", "Admin"))
}

func TestSyncMembership_AppliesOnlyDeltas(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	gate := NewGate(store)

	require.NoError(t, gate.AssignRole(context.Background(), "u1", "Admin"))
	require.NoError(t, gate.AssignRole(context.Background(), "u2", "Admin"))
	store.addCalls = 0

	// keep u1, drop u2, add u3
	added, removed, err := gate.SyncMembership(context.Background(), "r1", []string{"u1", "u3"})

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.addCalls, "unchanged members must not be rewritten")
	assert.Equal(t, 1, store.removeCalls)

	memberIDs, err := store.ListMemberIDs(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u3"}, memberIDs)
}

func TestSyncMembership_NoChanges(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	gate := NewGate(store)

	require.NoError(t, gate.AssignRole(context.Background(), "u1", "Admin"))
	store.addCalls = 0

	added, removed, err := gate.SyncMembership(context.Background(), "r1", []string{"u1"})

	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Zero(t, removed)
	assert.Zero(t, store.addCalls)
	assert.Zero(t, store.removeCalls)
}

func TestSyncMembership_UnknownRole(t *testing.T) {
	gate := NewGate(newFakeStore())

	_, _, err := gate.SyncMembership(context.Background(), "ghost", []string{"u1"})

	assert.ErrorIs(t, err, roles.ErrRoleNotFound)
}

func TestIsAuthorized(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	gate := NewGate(store)

	require.NoError(t, gate.AssignRole(context.Background(), "u1", "Admin"))

	member := &sessions.Principal{UserID: "u1"}
	outsider := &sessions.Principal{UserID: "u2"}

	assert.True(t, gate.IsAuthorized(context.Background(), member, "Admin"))
	assert.False(t, gate.IsAuthorized(context.Background(), outsider, "Admin"))
	assert.False(t, gate.IsAuthorized(context.Background(), member, "Ghost"))
}

func TestIsAuthorized_UnauthenticatedNever(t *testing.T) {
	gate := NewGate(newFakeStore())

	assert.False(t, gate.IsAuthorized(context.Background(), nil, "Admin"))
	assert.False(t, gate.IsAuthorized(context.Background(), &sessions.Principal{}, "Admin"))
}

func TestIsAuthorized_StoreErrorDenies(t *testing.T) {
	store := newFakeStore()
	store.addRole("r1", "Admin")
	store.failReads = true
	gate := NewGate(store)

	principal := &sessions.Principal{UserID: "u1"}

	assert.False(t, gate.IsAuthorized(context.Background(), principal, "Admin"))
}
