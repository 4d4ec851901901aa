package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/models"
)

// ShopRepositoryImpl implements ShopRepository on GORM
type ShopRepositoryImpl struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepositoryImpl {
	return &ShopRepositoryImpl{db: db}
}

func (r *ShopRepositoryImpl) Upsert(ctx context.Context, shop *entities.Shop) error {
	now := time.Now()
	m := &models.Shop{
		Domain:        shop.Domain,
		AccessToken:   shop.AccessToken,
		Scope:         shop.Scope,
		IsActive:      shop.IsActive,
		InstalledAt:   shop.InstalledAt,
		UninstalledAt: shop.UninstalledAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "domain"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "scope", "is_active", "installed_at", "uninstalled_at", "updated_at",
		}),
	}).Create(m).Error
}

func (r *ShopRepositoryImpl) FindByDomain(ctx context.Context, domain string) (*entities.Shop, error) {
	var m models.Shop
	if err := r.db.WithContext(ctx).Where("domain = ?", domain).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ShopRepositoryImpl) Deactivate(ctx context.Context, domain string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Shop{}).
		Where("domain = ?", domain).
		Updates(map[string]interface{}{
			"is_active":      false,
			"uninstalled_at": now,
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ShopRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shop{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *ShopRepositoryImpl) Purge(ctx context.Context, domain string) error {
	return r.db.WithContext(ctx).
		Where("domain = ?", domain).
		Delete(&models.Shop{}).Error
}

func (r *ShopRepositoryImpl) toEntity(m *models.Shop) *entities.Shop {
	return &entities.Shop{
		Domain:        m.Domain,
		AccessToken:   m.AccessToken,
		Scope:         m.Scope,
		IsActive:      m.IsActive,
		InstalledAt:   m.InstalledAt,
		UninstalledAt: m.UninstalledAt,
	}
}
