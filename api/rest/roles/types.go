package roles

import "codeberg.org/glowreview/server/glowreview/roles"

// CreateRoleRequest for creating a role
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// EditRoleRequest for renaming a role
type EditRoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// MembershipRequest for assigning or revoking a role by name
type MembershipRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	RoleName string `json:"role_name" binding:"required"`
}

// SyncMembersRequest replaces the role's membership with the given set
type SyncMembersRequest struct {
	UserIDs []string `json:"user_ids" binding:"required"`
}

// SyncMembersResponse reports the deltas that were applied
type SyncMembersResponse struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// RoleResponse wraps a single role
type RoleResponse struct {
	Role *roles.Role `json:"role"`
}

// RolesResponse wraps the role list
type RolesResponse struct {
	Roles []roles.Role `json:"roles"`
}

// MembersResponse wraps a role's member ids
type MembersResponse struct {
	UserIDs []string `json:"user_ids"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
