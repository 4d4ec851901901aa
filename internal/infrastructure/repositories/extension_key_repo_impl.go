package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/models"
)

// ExtensionKeyRepositoryImpl implements ExtensionKeyRepository on GORM
type ExtensionKeyRepositoryImpl struct {
	db *gorm.DB
}

func NewExtensionKeyRepository(db *gorm.DB) *ExtensionKeyRepositoryImpl {
	return &ExtensionKeyRepositoryImpl{db: db}
}

func (r *ExtensionKeyRepositoryImpl) Create(ctx context.Context, key *entities.ExtensionKey) error {
	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	now := time.Now()
	if key.CreatedAt.IsZero() {
		key.CreatedAt = now
	}
	m := &models.ExtensionKey{
		ID:         key.ID,
		ShopDomain: key.ShopDomain,
		Key:        key.Key,
		Name:       key.Name,
		IsActive:   key.IsActive,
		LastUsedAt: key.LastUsedAt,
		CreatedAt:  key.CreatedAt,
		UpdatedAt:  now,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ExtensionKeyRepositoryImpl) FindByKey(ctx context.Context, key string) (*entities.ExtensionKey, error) {
	var m models.ExtensionKey
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ExtensionKeyRepositoryImpl) ListActiveByShop(ctx context.Context, shopDomain string) ([]*entities.ExtensionKey, error) {
	var ms []models.ExtensionKey
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND is_active = ?", shopDomain, true).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	keys := make([]*entities.ExtensionKey, 0, len(ms))
	for i := range ms {
		keys = append(keys, r.toEntity(&ms[i]))
	}
	return keys, nil
}

// Revoke is scoped by both key and shop so one shop can never revoke
// another shop's key; the mismatch is a silent no-op.
func (r *ExtensionKeyRepositoryImpl) Revoke(ctx context.Context, key string, shopDomain string) error {
	return r.db.WithContext(ctx).Model(&models.ExtensionKey{}).
		Where("key = ? AND shop_domain = ?", key, shopDomain).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *ExtensionKeyRepositoryImpl) DeactivateByShop(ctx context.Context, shopDomain string) error {
	return r.db.WithContext(ctx).Model(&models.ExtensionKey{}).
		Where("shop_domain = ?", shopDomain).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *ExtensionKeyRepositoryImpl) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.ExtensionKey{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_used_at": at,
			"updated_at":   at,
		}).Error
}

func (r *ExtensionKeyRepositoryImpl) DeleteByShop(ctx context.Context, shopDomain string) error {
	return r.db.WithContext(ctx).
		Where("shop_domain = ?", shopDomain).
		Delete(&models.ExtensionKey{}).Error
}

func (r *ExtensionKeyRepositoryImpl) toEntity(m *models.ExtensionKey) *entities.ExtensionKey {
	return &entities.ExtensionKey{
		ID:         m.ID,
		ShopDomain: m.ShopDomain,
		Key:        m.Key,
		Name:       m.Name,
		IsActive:   m.IsActive,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
