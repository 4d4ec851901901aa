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

// SenderConfigRepositoryImpl implements SenderConfigRepository on GORM
type SenderConfigRepositoryImpl struct {
	db *gorm.DB
}

func NewSenderConfigRepository(db *gorm.DB) *SenderConfigRepositoryImpl {
	return &SenderConfigRepositoryImpl{db: db}
}

func (r *SenderConfigRepositoryImpl) Upsert(ctx context.Context, config *entities.SenderConfig) error {
	now := time.Now()
	m := &models.SenderConfig{
		ShopDomain:         config.ShopDomain,
		IdentificationType: config.IdentificationType,
		SenderID:           config.SenderID,
		SenderName:         config.SenderName,
		SenderPhone:        config.SenderPhone,
		SenderMail:         config.SenderMail,
		ProvinceCode:       config.ProvinceCode,
		CantonCode:         config.CantonCode,
		DistrictCode:       config.DistrictCode,
		PostalCode:         config.PostalCode,
		AddressLine:        config.AddressLine,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_domain"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"identification_type", "sender_id", "sender_name", "sender_phone",
			"sender_mail", "province_code", "canton_code", "district_code",
			"postal_code", "address_line", "updated_at",
		}),
	}).Create(m).Error
}

func (r *SenderConfigRepositoryImpl) FindByShop(ctx context.Context, shopDomain string) (*entities.SenderConfig, error) {
	var m models.SenderConfig
	if err := r.db.WithContext(ctx).Where("shop_domain = ?", shopDomain).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.SenderConfig{
		ShopDomain:         m.ShopDomain,
		IdentificationType: m.IdentificationType,
		SenderID:           m.SenderID,
		SenderName:         m.SenderName,
		SenderPhone:        m.SenderPhone,
		SenderMail:         m.SenderMail,
		ProvinceCode:       m.ProvinceCode,
		CantonCode:         m.CantonCode,
		DistrictCode:       m.DistrictCode,
		PostalCode:         m.PostalCode,
		AddressLine:        m.AddressLine,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

func (r *SenderConfigRepositoryImpl) DeleteByShop(ctx context.Context, shopDomain string) error {
	return r.db.WithContext(ctx).
		Where("shop_domain = ?", shopDomain).
		Delete(&models.SenderConfig{}).Error
}
