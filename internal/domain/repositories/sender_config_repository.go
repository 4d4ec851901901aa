package repositories

import (
	"context"

	"shipping-bridge.backend/internal/domain/entities"
)

type SenderConfigRepository interface {
	// Upsert replaces the shop's config wholesale.
	Upsert(ctx context.Context, config *entities.SenderConfig) error
	FindByShop(ctx context.Context, shopDomain string) (*entities.SenderConfig, error)
	DeleteByShop(ctx context.Context, shopDomain string) error
}
