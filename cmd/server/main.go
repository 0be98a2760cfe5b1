package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/config"
	"codeberg.org/glowreview/server/internal/logger"
)

// @title GlowReview API
// @version 1.0
// @description Product review platform with local and federated sign-in
// @description
// @description Features:
// @description - Email/password registration and login with account lockout
// @description - Federated sign-in (Google, GitHub) with account linking
// @description - Role-based administration
// @description - Per-user product wishlists

// @host glowreview.dev

func main() {
	logger.Info("starting glowreview server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize OAuth providers
	if err := auth.InitializeProviders(cfg); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
