package main

import (
	"codeberg.org/glowreview/server/glowreview/products"
	"codeberg.org/glowreview/server/glowreview/roles"
	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/access"
	"codeberg.org/glowreview/server/internal/accounts"
	"codeberg.org/glowreview/server/internal/config"
	"codeberg.org/glowreview/server/internal/federated"
	"codeberg.org/glowreview/server/internal/sessions"
	"codeberg.org/glowreview/server/internal/wishlist"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	roleRepo    *roles.Repository
	productRepo *products.Repository
	accounts    *accounts.Service
	broker      *federated.Broker
	gate        *access.Gate
	wishlist    *wishlist.Service
	sessionMgr  *sessions.Manager
	router      *gin.Engine
}
