package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/pkg/logger"
)

// WebhookUsecase applies lifecycle and GDPR webhook effects to local state.
type WebhookUsecase struct {
	shopRepo   repositories.ShopRepository
	keyRepo    repositories.ExtensionKeyRepository
	configRepo repositories.SenderConfigRepository
}

func NewWebhookUsecase(
	shopRepo repositories.ShopRepository,
	keyRepo repositories.ExtensionKeyRepository,
	configRepo repositories.SenderConfigRepository,
) *WebhookUsecase {
	return &WebhookUsecase{
		shopRepo:   shopRepo,
		keyRepo:    keyRepo,
		configRepo: configRepo,
	}
}

// HandleAppUninstalled soft-deactivates the shop and its keys. The rows
// stay around so a reinstall restores the shop in place. An unknown shop
// is a no-op; the platform retries on anything but 200.
func (u *WebhookUsecase) HandleAppUninstalled(ctx context.Context, shopDomain string) error {
	if err := u.shopRepo.Deactivate(ctx, shopDomain); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "uninstall webhook for unknown shop", zap.String("shop", shopDomain))
			return nil
		}
		return err
	}
	if err := u.keyRepo.DeactivateByShop(ctx, shopDomain); err != nil {
		return err
	}
	logger.Info(ctx, "shop uninstalled", zap.String("shop", shopDomain))
	return nil
}

// HandleCustomerDataRequest acknowledges the request. No customer data is
// retained beyond what Shopify itself holds, so there is nothing to export.
func (u *WebhookUsecase) HandleCustomerDataRequest(ctx context.Context, shopDomain string) error {
	logger.Info(ctx, "customer data request received", zap.String("shop", shopDomain))
	return nil
}

// HandleCustomerRedact erases everything stored for the shop named in the
// payload: extension keys and sender config are hard-deleted, the shop is
// deactivated and keeps only its lifecycle record.
func (u *WebhookUsecase) HandleCustomerRedact(ctx context.Context, shopDomain string) error {
	if err := u.keyRepo.DeleteByShop(ctx, shopDomain); err != nil {
		return err
	}
	if err := u.configRepo.DeleteByShop(ctx, shopDomain); err != nil {
		return err
	}
	if err := u.shopRepo.Deactivate(ctx, shopDomain); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	logger.Info(ctx, "customer redact applied", zap.String("shop", shopDomain))
	return nil
}

// HandleShopRedact only logs the payload today.
// TODO: purge the shop row itself once retention requirements are settled.
func (u *WebhookUsecase) HandleShopRedact(ctx context.Context, shopDomain string) error {
	logger.Info(ctx, "shop redact received", zap.String("shop", shopDomain))
	return nil
}
