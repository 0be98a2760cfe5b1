package roles

import (
	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/internal/access"
	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// registers the role administration routes; every route requires the
// Admin role
func RegisterRoutes(
	router *gin.RouterGroup,
	roleRepo *roles.Repository,
	gate *access.Gate,
	sessionMgr *sessions.Manager,
) {
	admin := auth.RequireRole(sessionMgr, gate, "Admin")

	roleGroup := router.Group("/roles", admin)
	{
		roleGroup.GET("", ListHandler(roleRepo))
		roleGroup.POST("", CreateHandler(roleRepo))
		roleGroup.PUT("/:id", EditHandler(roleRepo))
		roleGroup.GET("/:id/members", MembersHandler(roleRepo))
		roleGroup.PUT("/:id/members", SyncMembersHandler(gate))
		roleGroup.POST("/assign", AssignHandler(gate))
		roleGroup.POST("/revoke", RevokeHandler(gate))
	}
}
