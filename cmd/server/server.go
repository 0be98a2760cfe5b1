package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/glowreview/server/glowreview/products"
	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/access"
	"codeberg.org/glowreview/server/internal/accounts"
	"codeberg.org/glowreview/server/internal/auth"
	"codeberg.org/glowreview/server/internal/config"
	"codeberg.org/glowreview/server/internal/federated"
	"codeberg.org/glowreview/server/internal/sessions"
	"codeberg.org/glowreview/server/internal/wishlist"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// modest pool; every request holds a connection only briefly
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	roleRepo := roles.NewRepository(db)
	productRepo := products.NewRepository(db)

	sessionMgr := sessions.NewManager(cfg.SessionSecret, cfg.IsProduction())

	accountsSvc := accounts.NewService(
		userRepo,
		auth.DefaultPasswordPolicy(cfg.PasswordMinLength),
		accounts.LockoutPolicy{
			MaxAttempts: cfg.LockoutMaxAttempts,
			Cooldown:    cfg.LockoutCooldown,
		},
	)

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		productRepo: productRepo,
		accounts:    accountsSvc,
		broker:      federated.NewBroker(userRepo),
		gate:        access.NewGate(roleRepo),
		wishlist:    wishlist.NewService(userRepo, productRepo),
		sessionMgr:  sessionMgr,
		router:      gin.Default(),
	}

	if err := server.seed(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	RegisterRoutes(server.router, server)

	return server, nil
}
