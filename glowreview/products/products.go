package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new product repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a product by its ID
func (r *Repository) GetProductByID(ctx context.Context, productID string) (*Product, error) {
	var p Product

	err := r.db.QueryRow(ctx, queryFindProductByID, productID).
		Scan(&p.ID, &p.Name, &p.Brand, &p.Price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &p, nil
}

// returns a page of the catalog ordered by name
func (r *Repository) ListProducts(ctx context.Context, limit, offset int) ([]Product, error) {
	rows, err := r.db.Query(ctx, queryListProducts, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	result := []Product{}

	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return result, nil
}

// returns the total number of catalog products
func (r *Repository) CountProducts(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountProducts).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return total, nil
}

// returns the reviews written under the given display name, newest first
func (r *Repository) GetReviewsByUserName(ctx context.Context, userName string) ([]Review, error) {
	rows, err := r.db.Query(ctx, queryReviewsByUserName, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	result := []Review{}

	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		result = append(result, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return result, nil
}

// inserts demo catalog rows, skipping ids that already exist
func (r *Repository) Seed(ctx context.Context, catalog []Product) error {
	for _, p := range catalog {
		if _, err := r.db.Exec(ctx, querySeedProduct, p.ID, p.Name, p.Brand, p.Price); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	return nil
}
