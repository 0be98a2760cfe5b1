package roles

import (
	"context"
	"errors"
	"net/http"

	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/internal/access"
	apierrors "codeberg.org/glowreview/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {object} RolesResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/roles [get]
func ListHandler(roleRepo *roles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := roleRepo.List(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to list roles", err)
			return
		}

		c.JSON(http.StatusOK, RolesResponse{Roles: all})
	}
}

// CreateHandler godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Success 201 {object} RoleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/roles [post]
func CreateHandler(roleRepo *roles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		role, err := roleRepo.Create(c.Request.Context(), req.Name)
		if err != nil {
			apierrors.InternalError(c, "failed to create role", err)
			return
		}

		c.JSON(http.StatusCreated, RoleResponse{Role: role})
	}
}

// EditHandler godoc
// @Summary Rename a role
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} RoleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/roles/{id} [put]
func EditHandler(roleRepo *roles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EditRoleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		role, err := roleRepo.Edit(c.Request.Context(), c.Param("id"), req.Name)
		if err != nil {
			if errors.Is(err, roles.ErrRoleNotFound) {
				apierrors.NotFound(c, "role")
				return
			}

			apierrors.InternalError(c, "failed to edit role", err)
			return
		}

		c.JSON(http.StatusOK, RoleResponse{Role: role})
	}
}

// MembersHandler godoc
// @Summary List a role's members
// @Tags roles
// @Produce json
// @Success 200 {object} MembersResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/roles/{id}/members [get]
func MembersHandler(roleRepo *roles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID := c.Param("id")

		if _, err := roleRepo.FindByID(c.Request.Context(), roleID); err != nil {
			if errors.Is(err, roles.ErrRoleNotFound) {
				apierrors.NotFound(c, "role")
				return
			}

			apierrors.InternalError(c, "failed to find role", err)
			return
		}

		memberIDs, err := roleRepo.ListMemberIDs(c.Request.Context(), roleID)
		if err != nil {
			apierrors.InternalError(c, "failed to list members", err)
			return
		}

		c.JSON(http.StatusOK, MembersResponse{UserIDs: memberIDs})
	}
}

// SyncMembersHandler godoc
// @Summary Replace a role's membership
// @Description Reconciles membership with the given user ids, applying only the deltas
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} SyncMembersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/roles/{id}/members [put]
func SyncMembersHandler(gate *access.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncMembersRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		added, removed, err := gate.SyncMembership(c.Request.Context(), c.Param("id"), req.UserIDs)
		if err != nil {
			if errors.Is(err, roles.ErrRoleNotFound) {
				apierrors.NotFound(c, "role")
				return
			}

			apierrors.InternalError(c, "failed to sync membership", err)
			return
		}

		c.JSON(http.StatusOK, SyncMembersResponse{Added: added, Removed: removed})
	}
}

// AssignHandler godoc
// @Summary Assign a role to a user
// @Description Idempotent: assigning an already-held role succeeds without change
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/roles/assign [post]
func AssignHandler(gate *access.Gate) gin.HandlerFunc {
	return membershipHandler(gate.AssignRole, "role assigned")
}

// RevokeHandler godoc
// @Summary Revoke a role from a user
// @Description Idempotent: revoking an unheld role succeeds without change
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/roles/revoke [post]
func RevokeHandler(gate *access.Gate) gin.HandlerFunc {
	return membershipHandler(gate.RevokeRole, "role revoked")
}

func membershipHandler(
	apply func(ctx context.Context, userID, roleName string) error,
	message string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MembershipRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if err := apply(c.Request.Context(), req.UserID, req.RoleName); err != nil {
			if errors.Is(err, roles.ErrRoleNotFound) {
				apierrors.NotFound(c, "role")
				return
			}

			apierrors.InternalError(c, "failed to update membership", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: message})
	}
}
