package wishlist

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/glowreview/server/glowreview/products"
	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/logger"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

// Store is the slice of the user repository this service needs. Add and
// remove are single-statement set mutations at the store, so concurrent
// edits to the same wishlist cannot lose updates.
type Store interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	AddWishlistItem(ctx context.Context, userID, productID string) (bool, error)
	RemoveWishlistItem(ctx context.Context, userID, productID string) (bool, error)
	ListWishlist(ctx context.Context, userID string) ([]string, error)
}

// Catalog is the read-only product lookup collaborator.
type Catalog interface {
	GetProductByID(ctx context.Context, productID string) (*products.Product, error)
}

// Service mutates a user's saved-product collection.
type Service struct {
	store   Store
	catalog Catalog
}

// creates the wishlist service
func NewService(store Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// Add saves the product to the user's wishlist. Adding a product that is
// already saved succeeds without modification.
func (s *Service) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.catalog.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to look up product: %w", err)
	}

	inserted, err := s.store.AddWishlistItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	if inserted {
		logger.Debug("wishlist item added", "user_id", userID, "product_id", productID)
	}

	return nil
}

// Remove drops the product from the user's wishlist. Removing a product
// that is not saved succeeds and leaves the set unchanged.
func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	if _, err := s.store.FindByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if _, err := s.store.RemoveWishlistItem(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return nil
}

// List returns the product ids saved by the user.
func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	if _, err := s.store.FindByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.store.ListWishlist(ctx, userID)
}
