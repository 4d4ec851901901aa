package repositories

import (
	"context"

	"shipping-bridge.backend/internal/domain/entities"
)

type ShopRepository interface {
	// Upsert creates the shop or replaces its credentials and lifecycle
	// fields when the domain already exists.
	Upsert(ctx context.Context, shop *entities.Shop) error
	FindByDomain(ctx context.Context, domain string) (*entities.Shop, error)
	// Deactivate flips the active flag and stamps uninstalled_at.
	Deactivate(ctx context.Context, domain string) error
	CountActive(ctx context.Context) (int64, error)
	// Purge removes the shop row entirely (GDPR redact).
	Purge(ctx context.Context, domain string) error
}
