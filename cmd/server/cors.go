package main

import (
	"time"

	"codeberg.org/glowreview/server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// returns the CORS policy for browser clients; cookies require an exact
// origin rather than a wildcard
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
