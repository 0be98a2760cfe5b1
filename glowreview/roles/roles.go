package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new role repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates the role if it does not exist yet and returns it either way,
// which makes startup seeding safely re-runnable
func (r *Repository) Create(ctx context.Context, name string) (*Role, error) {
	if _, err := r.db.Exec(ctx, queryInsertRole, uuid.NewString(), name); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return r.FindByName(ctx, name)
}

// renames the role
func (r *Repository) Edit(ctx context.Context, roleID, newName string) (*Role, error) {
	var role Role

	err := r.db.QueryRow(ctx, queryUpdateRole, roleID, newName).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to edit role: %w", err)
	}

	return &role, nil
}

// finds a role by its ID
func (r *Repository) FindByID(ctx context.Context, roleID string) (*Role, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, roleID))
}

// finds a role by its unique name
func (r *Repository) FindByName(ctx context.Context, name string) (*Role, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByName, name))
}

// returns all roles ordered by name
func (r *Repository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, queryListRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	result := []Role{}

	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		result = append(result, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", err)
	}

	return result, nil
}

// grants membership; granting an already-held role is a no-op
func (r *Repository) AddMember(ctx context.Context, roleID, userID string) error {
	if _, err := r.db.Exec(ctx, queryAddMember, userID, roleID); err != nil {
		return fmt.Errorf("failed to add role member: %w", err)
	}

	return nil
}

// revokes membership; revoking an unheld role is a no-op
func (r *Repository) RemoveMember(ctx context.Context, roleID, userID string) error {
	if _, err := r.db.Exec(ctx, queryRemoveMember, userID, roleID); err != nil {
		return fmt.Errorf("failed to remove role member: %w", err)
	}

	return nil
}

// returns the ids of all users holding the role
func (r *Repository) ListMemberIDs(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListMemberIDs, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role members: %w", err)
	}
	defer rows.Close()

	memberIDs := []string{}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		memberIDs = append(memberIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read role members: %w", err)
	}

	return memberIDs, nil
}

// reports whether the user holds the named role
func (r *Repository) UserHasRole(ctx context.Context, userID, roleName string) (bool, error) {
	var held bool

	err := r.db.QueryRow(ctx, queryUserHasRole, userID, roleName).Scan(&held)
	if err != nil {
		return false, fmt.Errorf("failed to check role membership: %w", err)
	}

	return held, nil
}

func (r *Repository) scanOne(row pgx.Row) (*Role, error) {
	var role Role

	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to scan role: %w", err)
	}

	return &role, nil
}
