package main

import (
	"codeberg.org/glowreview/server/api/rest/auth"
	"codeberg.org/glowreview/server/api/rest/health"
	"codeberg.org/glowreview/server/api/rest/products"
	"codeberg.org/glowreview/server/api/rest/roles"
	"codeberg.org/glowreview/server/api/rest/wishlist"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler(server.db))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.accounts, server.broker, server.sessionMgr, server.userRepo)
		roles.RegisterRoutes(v1, server.roleRepo, server.gate, server.sessionMgr)
		wishlist.RegisterRoutes(v1, server.wishlist, server.sessionMgr)
		products.RegisterRoutes(v1, server.productRepo)
	}
}
