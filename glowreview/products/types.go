package products

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// read-only catalog and review lookups; the identity core only ever
// consumes this, it never writes through it
type Repository struct {
	db *pgxpool.Pool
}

// represents a catalog product
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// represents a published product review
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
