package usecases

import (
	"context"
	"errors"
	"time"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/domain/repositories"
)

type SenderConfigUsecase struct {
	configRepo repositories.SenderConfigRepository
}

func NewSenderConfigUsecase(configRepo repositories.SenderConfigRepository) *SenderConfigUsecase {
	return &SenderConfigUsecase{configRepo: configRepo}
}

// Save replaces the shop's sender config wholesale.
func (u *SenderConfigUsecase) Save(ctx context.Context, shopDomain string, input entities.SenderConfigInput) (*entities.SenderConfig, error) {
	now := time.Now()
	cfg := &entities.SenderConfig{
		ShopDomain:         shopDomain,
		IdentificationType: input.IdentificationType,
		SenderID:           input.SenderID,
		SenderName:         input.SenderName,
		SenderPhone:        input.SenderPhone,
		SenderMail:         input.SenderMail,
		ProvinceCode:       input.ProvinceCode,
		CantonCode:         input.CantonCode,
		DistrictCode:       input.DistrictCode,
		PostalCode:         input.PostalCode,
		AddressLine:        input.AddressLine,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := u.configRepo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetForAdmin returns the full config, or nil when none is saved yet so the
// admin surface can render an empty form.
func (u *SenderConfigUsecase) GetForAdmin(ctx context.Context, shopDomain string) (*entities.SenderConfig, error) {
	cfg, err := u.configRepo.FindByShop(ctx, shopDomain)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// GetForExtension returns the whitelisted projection. A missing config is
// a 404 telling the extension to send the merchant to the admin first.
func (u *SenderConfigUsecase) GetForExtension(ctx context.Context, shopDomain string) (*entities.ExtensionView, error) {
	cfg, err := u.configRepo.FindByShop(ctx, shopDomain)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("sender configuration not found, configure it from the app admin first")
		}
		return nil, err
	}
	view := cfg.ForExtension()
	return &view, nil
}
