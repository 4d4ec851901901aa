package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"shipping-bridge.backend/internal/domain/entities"
)

type ExtensionKeyRepository interface {
	Create(ctx context.Context, key *entities.ExtensionKey) error
	FindByKey(ctx context.Context, key string) (*entities.ExtensionKey, error)
	// ListActiveByShop returns the shop's active keys, most recent first.
	ListActiveByShop(ctx context.Context, shopDomain string) ([]*entities.ExtensionKey, error)
	// Revoke deactivates the key only when it belongs to shopDomain;
	// a mismatched shop is a no-op.
	Revoke(ctx context.Context, key string, shopDomain string) error
	DeactivateByShop(ctx context.Context, shopDomain string) error
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteByShop(ctx context.Context, shopDomain string) error
}
