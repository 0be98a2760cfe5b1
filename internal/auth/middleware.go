package auth

import (
	"codeberg.org/glowreview/server/internal/access"
	"codeberg.org/glowreview/server/internal/errors"
	"codeberg.org/glowreview/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// rejects requests without an authenticated session and adds the
// principal to the gin context
func RequireAuth(mgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := mgr.Current(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("user_id", principal.UserID)
		c.Set("user_email", principal.Email)

		c.Next()
	}
}

// rejects authenticated requests whose principal lacks the required role
func RequireRole(mgr *sessions.Manager, gate *access.Gate, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := mgr.Current(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !gate.IsAuthorized(c.Request.Context(), principal, role) {
			errors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("user_id", principal.UserID)
		c.Set("user_email", principal.Email)

		c.Next()
	}
}

// extracts the principal from context after RequireAuth/RequireRole
func CurrentPrincipal(c *gin.Context) (*sessions.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}

	principal, ok := value.(*sessions.Principal)
	return principal, ok
}
