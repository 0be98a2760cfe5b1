package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Response represents the health check response
type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}

// Handler reports server health including database reachability. An
// unreachable database degrades the status but still answers 200, so
// probes can tell degraded from down.
func Handler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		database := "ok"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			status = "degraded"
			database = "unreachable"
		}

		c.JSON(http.StatusOK, Response{
			Status:   status,
			Service:  "glowreview",
			Database: database,
			Version:  "1.0.0",
		})
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
