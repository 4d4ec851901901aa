package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/domain/repositories"
)

var extensionKeyRandRead = rand.Read

type ExtensionKeyUsecase struct {
	keyRepo  repositories.ExtensionKeyRepository
	shopRepo repositories.ShopRepository
}

func NewExtensionKeyUsecase(
	keyRepo repositories.ExtensionKeyRepository,
	shopRepo repositories.ShopRepository,
) *ExtensionKeyUsecase {
	return &ExtensionKeyUsecase{
		keyRepo:  keyRepo,
		shopRepo: shopRepo,
	}
}

// Create mints a new opaque key for the shop. The value is `sk_` followed
// by 32 random bytes in hex and is shown to the merchant as-is.
func (u *ExtensionKeyUsecase) Create(ctx context.Context, shopDomain, name string) (*entities.ExtensionKey, error) {
	if name == "" {
		name = entities.DefaultExtensionKeyName
	}

	value, err := generateKeyValue()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	key := &entities.ExtensionKey{
		ShopDomain: shopDomain,
		Key:        value,
		Name:       name,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if err := u.keyRepo.Create(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

// List returns the shop's active keys, most recently created first.
func (u *ExtensionKeyUsecase) List(ctx context.Context, shopDomain string) ([]*entities.ExtensionKey, error) {
	return u.keyRepo.ListActiveByShop(ctx, shopDomain)
}

// Revoke deactivates a key scoped to the shop; a key owned by another shop
// is untouched.
func (u *ExtensionKeyUsecase) Revoke(ctx context.Context, shopDomain, key string) error {
	return u.keyRepo.Revoke(ctx, key, shopDomain)
}

// Validate authenticates an extension bearer key. Only active keys of
// active shops pass; the key's last-used timestamp is refreshed on success.
func (u *ExtensionKeyUsecase) Validate(ctx context.Context, key string) (*entities.Shop, error) {
	if !strings.HasPrefix(key, entities.ExtensionKeyPrefix) {
		return nil, domainerrors.Unauthorized("invalid access key")
	}

	stored, err := u.keyRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid access key")
	}
	if !stored.IsActive {
		return nil, domainerrors.Unauthorized("access key revoked")
	}

	shop, err := u.shopRepo.FindByDomain(ctx, stored.ShopDomain)
	if err != nil || !shop.IsActive {
		return nil, domainerrors.Unauthorized("shop is not active")
	}

	_ = u.keyRepo.TouchLastUsed(ctx, stored.ID, time.Now())

	return shop, nil
}

func generateKeyValue() (string, error) {
	raw, err := generateRandomHex(32)
	if err != nil {
		return "", err
	}
	return entities.ExtensionKeyPrefix + raw, nil
}

func generateRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := extensionKeyRandRead(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
