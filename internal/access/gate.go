package access

import (
	"context"
	"fmt"

	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/internal/logger"
	"codeberg.org/glowreview/server/internal/sessions"
)

// Store is the slice of the role repository the gate needs.
type Store interface {
	FindByName(ctx context.Context, name string) (*roles.Role, error)
	FindByID(ctx context.Context, roleID string) (*roles.Role, error)
	AddMember(ctx context.Context, roleID, userID string) error
	RemoveMember(ctx context.Context, roleID, userID string) error
	ListMemberIDs(ctx context.Context, roleID string) ([]string, error)
	UserHasRole(ctx context.Context, userID, roleName string) (bool, error)
}

// Gate answers role-authorization questions and manages membership.
type Gate struct {
	store Store
}

// creates the authorization gate
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// grants the named role to the user; granting an already-held role is a
// no-op success
func (g *Gate) AssignRole(ctx context.Context, userID, roleName string) error {
	role, err := g.store.FindByName(ctx, roleName)
	if err != nil {
		return err
	}

	return g.store.AddMember(ctx, role.ID, userID)
}

// revokes the named role from the user; revoking an unheld role is a
// no-op success
func (g *Gate) RevokeRole(ctx context.Context, userID, roleName string) error {
	role, err := g.store.FindByName(ctx, roleName)
	if err != nil {
		return err
	}

	return g.store.RemoveMember(ctx, role.ID, userID)
}

// SyncMembership reconciles the role's membership with the desired user
// ids, applying only the deltas. Memberships that already match are
// never rewritten.
func (g *Gate) SyncMembership(ctx context.Context, roleID string, desiredMemberIDs []string) (added, removed int, err error) {
	if _, err := g.store.FindByID(ctx, roleID); err != nil {
		return 0, 0, err
	}

	currentIDs, err := g.store.ListMemberIDs(ctx, roleID)
	if err != nil {
		return 0, 0, err
	}

	current := make(map[string]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}

	desired := make(map[string]bool, len(desiredMemberIDs))
	for _, id := range desiredMemberIDs {
		desired[id] = true
	}

	for id := range desired {
		if current[id] {
			continue
		}

		if err := g.store.AddMember(ctx, roleID, id); err != nil {
			return added, removed, fmt.Errorf("failed to add member %s: %w", id, err)
		}
		added++
	}

	for id := range current {
		if desired[id] {
			continue
		}

		if err := g.store.RemoveMember(ctx, roleID, id); err != nil {
			return added, removed, fmt.Errorf("failed to remove member %s: %w", id, err)
		}
		removed++
	}

	return added, removed, nil
}

// IsAuthorized reports whether the principal holds the required role.
// Pure read; an unauthenticated principal is never authorized.
func (g *Gate) IsAuthorized(ctx context.Context, p *sessions.Principal, requiredRole string) bool {
	if p == nil || p.UserID == "" {
		return false
	}

	held, err := g.store.UserHasRole(ctx, p.UserID, requiredRole)
	if err != nil {
		logger.ErrorErr(err, "authorization check failed",
			"user_id", p.UserID,
			"role", requiredRole,
		)
		return false
	}

	return held
}
