package main

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/glowreview/server/glowreview/products"
	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/accounts"
	"codeberg.org/glowreview/server/internal/logger"
)

// ensures the built-in roles exist and, outside production, loads a demo
// catalog and demo accounts. Safe to run on every startup.
func (s *Server) seed(ctx context.Context) error {
	for _, name := range []string{"Admin", "User"} {
		if _, err := s.roleRepo.Create(ctx, name); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}

	if s.config.IsProduction() {
		return nil
	}

	if err := s.productRepo.Seed(ctx, demoCatalog); err != nil {
		return err
	}

	for _, account := range demoAccounts {
		_, err := s.accounts.Register(ctx, account.email, account.password, account.name)
		if err != nil && !errors.Is(err, users.ErrDuplicateEmail) {
			var weak *accounts.WeakPasswordError
			if errors.As(err, &weak) {
				logger.Warn("skipping demo account, password fails policy", "issues", weak.Issues)
				continue
			}
			return fmt.Errorf("failed to seed account: %w", err)
		}
	}

	logger.Info("demo data seeded",
		"products", len(demoCatalog),
		"accounts", len(demoAccounts),
	)

	return nil
}

var demoCatalog = []products.Product{
	{ID: "lipstick-velvet-01", Name: "Velvet Matte Lipstick", Brand: "Lumine", Price: 18.50},
	{ID: "foundation-silk-02", Name: "Silk Finish Foundation", Brand: "Lumine", Price: 32.00},
	{ID: "mascara-volume-03", Name: "Volume Boost Mascara", Brand: "Kessa", Price: 14.90},
	{ID: "palette-dusk-04", Name: "Dusk Eyeshadow Palette", Brand: "Kessa", Price: 44.00},
}

var demoAccounts = []struct {
	name     string
	email    string
	password string
}{
	{"Alice Johnson", "alice@example.com", "password!23"},
	{"Brenda Smith", "bob@example.com", "securepass!1"},
}
