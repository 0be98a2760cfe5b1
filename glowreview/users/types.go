package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered account
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   *string    `json:"-"` // nil for accounts created through a federated provider
	FullName       string     `json:"full_name"`
	JoinDate       time.Time  `json:"join_date"`
	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
}

// contains the fields needed to create an account
type NewUser struct {
	Email        string
	PasswordHash *string
	FullName     string
}

// one row of the external_logins table
type ExternalLogin struct {
	Provider    string    `json:"provider"`
	ProviderKey string    `json:"-"`
	UserID      string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
