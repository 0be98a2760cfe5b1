package wishlist

import (
	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/sessions"
	"codeberg.org/glowreview/server/internal/wishlist"
	"github.com/gin-gonic/gin"
)

// registers the wishlist routes; all require an authenticated session
func RegisterRoutes(router *gin.RouterGroup, svc *wishlist.Service, sessionMgr *sessions.Manager) {
	group := router.Group("/wishlist", auth.RequireAuth(sessionMgr))
	{
		group.GET("", ListHandler(svc))
		group.POST("/:productId", AddHandler(svc))
		group.DELETE("/:productId", RemoveHandler(svc))
	}
}
