package roles

import "github.com/jackc/pgx/v5/pgxpool"

// handles role and membership database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a role grantable to users
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
