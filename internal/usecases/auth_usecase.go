package usecases

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"shipping-bridge.backend/internal/config"
	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/internal/infrastructure/shopify"
	"shipping-bridge.backend/pkg/logger"
)

// AuthUsecase drives the OAuth install handshake: the authorize redirect,
// the signed callback, token exchange, shop persistence and the initial
// extension key.
type AuthUsecase struct {
	shopRepo   repositories.ShopRepository
	keyUsecase *ExtensionKeyUsecase
	stateStore repositories.StateStore
	client     PlatformClient
	cfg        config.ShopifyConfig
}

func NewAuthUsecase(
	shopRepo repositories.ShopRepository,
	keyUsecase *ExtensionKeyUsecase,
	stateStore repositories.StateStore,
	client PlatformClient,
	cfg config.ShopifyConfig,
) *AuthUsecase {
	return &AuthUsecase{
		shopRepo:   shopRepo,
		keyUsecase: keyUsecase,
		stateStore: stateStore,
		client:     client,
		cfg:        cfg,
	}
}

// BeginInstall validates the shop domain, records a fresh nonce and returns
// the platform authorization URL to redirect the merchant to.
func (u *AuthUsecase) BeginInstall(ctx context.Context, shop string) (string, error) {
	if !entities.IsValidShopDomain(shop) {
		return "", domainerrors.BadRequest("missing or invalid shop parameter")
	}

	state, err := generateRandomHex(16)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}
	if err := u.stateStore.Put(ctx, shop, state, time.Now()); err != nil {
		return "", domainerrors.InternalError(err)
	}

	redirectURI := u.cfg.AppURL + "/api/auth/callback"
	return u.client.AuthorizeURL(shop, u.cfg.Scopes, redirectURI, state), nil
}

// CompleteInstall handles the signed OAuth callback. It checks the pending
// state and the callback HMAC, exchanges the code for an access token,
// upserts the shop, mints the initial extension key and registers the
// uninstall webhook. Returns the in-admin app URL to redirect to.
func (u *AuthUsecase) CompleteInstall(ctx context.Context, query url.Values) (string, error) {
	shop := query.Get("shop")
	code := query.Get("code")
	state := query.Get("state")

	if !entities.IsValidShopDomain(shop) {
		return "", domainerrors.BadRequest("missing or invalid shop parameter")
	}

	pending, ok, err := u.stateStore.Get(ctx, shop)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}
	if !ok || state == "" || pending != state {
		return "", domainerrors.NewAppError(http.StatusForbidden, "invalid oauth state", domainerrors.ErrStateMismatch)
	}

	if !shopify.VerifyCallbackHMAC(query, u.cfg.APISecret) {
		return "", domainerrors.NewAppError(http.StatusForbidden, "hmac verification failed", domainerrors.ErrInvalidHMAC)
	}

	// The nonce is single-use regardless of what happens next.
	_ = u.stateStore.Delete(ctx, shop)

	token, err := u.client.ExchangeToken(ctx, shop, code)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}

	now := time.Now()
	record, err := u.shopRepo.FindByDomain(ctx, shop)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.InternalError(err)
		}
		record = &entities.Shop{Domain: shop}
	}
	record.Install(token.AccessToken, token.Scope, now)
	if err := u.shopRepo.Upsert(ctx, record); err != nil {
		return "", domainerrors.InternalError(err)
	}

	if _, err := u.keyUsecase.Create(ctx, shop, entities.InitialExtensionKeyName); err != nil {
		return "", err
	}

	address := u.cfg.AppURL + "/api/webhooks/app/uninstalled"
	if err := u.client.RegisterWebhook(ctx, shop, token.AccessToken, "app/uninstalled", address); err != nil {
		if !errors.Is(err, shopify.ErrWebhookExists) {
			// Install still succeeds; uninstalls for this shop will be
			// missed until the subscription is registered.
			logger.Warn(ctx, "uninstall webhook registration failed",
				zap.String("shop", shop), zap.Error(err))
		}
	}

	logger.Info(ctx, "shop installed", zap.String("shop", shop), zap.String("scope", token.Scope))

	return u.client.AppURL(shop), nil
}
