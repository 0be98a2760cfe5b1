package auth

import (
	"time"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/accounts"
	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/federated"
	"codeberg.org/glowreview/server/internal/sessions"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// registers all authentication routes
func RegisterRoutes(
	router *gin.RouterGroup,
	svc *accounts.Service,
	broker *federated.Broker,
	sessionMgr *sessions.Manager,
	userRepo *users.Repository,
) {
	// per-IP throttle on the credential endpoints, on top of the
	// per-account lockout
	throttle := limitergin.NewMiddleware(limiter.New(
		memory.NewStore(),
		limiter.Rate{Period: 1 * time.Minute, Limit: 20},
	))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", throttle, RegisterHandler(svc, sessionMgr))
		authGroup.POST("/login", throttle, LoginHandler(svc, sessionMgr))
		authGroup.POST("/logout", LogoutHandler(sessionMgr))
		authGroup.GET("/me", auth.RequireAuth(sessionMgr), MeHandler(userRepo))
		authGroup.PUT("/me", auth.RequireAuth(sessionMgr), UpdateProfileHandler(userRepo))
		authGroup.GET("/:provider", BeginFederatedHandler())
		authGroup.GET("/:provider/callback", FederatedCallbackHandler(broker, sessionMgr))
	}
}
