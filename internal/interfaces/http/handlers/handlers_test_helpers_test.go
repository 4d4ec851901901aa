package handlers_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/shopify"
)

const testWebhookSecret = "shpss_test_secret"

func webhookDigest(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// In-memory fakes over the domain repository interfaces.

type fakeShopRepo struct {
	shops       map[string]*entities.Shop
	deactivated []string
	purged      []string
}

func newFakeShopRepo(shops ...*entities.Shop) *fakeShopRepo {
	r := &fakeShopRepo{shops: map[string]*entities.Shop{}}
	for _, s := range shops {
		r.shops[s.Domain] = s
	}
	return r
}

func (r *fakeShopRepo) Upsert(_ context.Context, shop *entities.Shop) error {
	r.shops[shop.Domain] = shop
	return nil
}

func (r *fakeShopRepo) FindByDomain(_ context.Context, domain string) (*entities.Shop, error) {
	shop, ok := r.shops[domain]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return shop, nil
}

func (r *fakeShopRepo) Deactivate(_ context.Context, domain string) error {
	shop, ok := r.shops[domain]
	if !ok {
		return domainerrors.ErrNotFound
	}
	shop.Uninstall(time.Now())
	r.deactivated = append(r.deactivated, domain)
	return nil
}

func (r *fakeShopRepo) CountActive(context.Context) (int64, error) {
	var n int64
	for _, s := range r.shops {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeShopRepo) Purge(_ context.Context, domain string) error {
	if _, ok := r.shops[domain]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.shops, domain)
	r.purged = append(r.purged, domain)
	return nil
}

type fakeKeyRepo struct {
	keys map[string]*entities.ExtensionKey

	deactivatedShops []string
	deletedShops     []string
}

func newFakeKeyRepo() *fakeKeyRepo {
	return &fakeKeyRepo{keys: map[string]*entities.ExtensionKey{}}
}

func (r *fakeKeyRepo) Create(_ context.Context, key *entities.ExtensionKey) error {
	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	r.keys[key.Key] = key
	return nil
}

func (r *fakeKeyRepo) FindByKey(_ context.Context, key string) (*entities.ExtensionKey, error) {
	k, ok := r.keys[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return k, nil
}

func (r *fakeKeyRepo) ListActiveByShop(_ context.Context, shopDomain string) ([]*entities.ExtensionKey, error) {
	var out []*entities.ExtensionKey
	for _, k := range r.keys {
		if k.ShopDomain == shopDomain && k.IsActive {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *fakeKeyRepo) Revoke(_ context.Context, key string, shopDomain string) error {
	if k, ok := r.keys[key]; ok && k.ShopDomain == shopDomain {
		k.IsActive = false
	}
	return nil
}

func (r *fakeKeyRepo) DeactivateByShop(_ context.Context, shopDomain string) error {
	for _, k := range r.keys {
		if k.ShopDomain == shopDomain {
			k.IsActive = false
		}
	}
	r.deactivatedShops = append(r.deactivatedShops, shopDomain)
	return nil
}

func (r *fakeKeyRepo) TouchLastUsed(context.Context, uuid.UUID, time.Time) error { return nil }

func (r *fakeKeyRepo) DeleteByShop(_ context.Context, shopDomain string) error {
	for value, k := range r.keys {
		if k.ShopDomain == shopDomain {
			delete(r.keys, value)
		}
	}
	r.deletedShops = append(r.deletedShops, shopDomain)
	return nil
}

type fakeSenderConfigRepo struct {
	configs      map[string]*entities.SenderConfig
	deletedShops []string
}

func newFakeSenderConfigRepo() *fakeSenderConfigRepo {
	return &fakeSenderConfigRepo{configs: map[string]*entities.SenderConfig{}}
}

func (r *fakeSenderConfigRepo) Upsert(_ context.Context, config *entities.SenderConfig) error {
	r.configs[config.ShopDomain] = config
	return nil
}

func (r *fakeSenderConfigRepo) FindByShop(_ context.Context, shopDomain string) (*entities.SenderConfig, error) {
	cfg, ok := r.configs[shopDomain]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return cfg, nil
}

func (r *fakeSenderConfigRepo) DeleteByShop(_ context.Context, shopDomain string) error {
	delete(r.configs, shopDomain)
	r.deletedShops = append(r.deletedShops, shopDomain)
	return nil
}

// fakePlatformClient satisfies usecases.PlatformClient with canned responses.
type fakePlatformClient struct {
	orders       []shopify.Order
	ordersErr    error
	fulfillment  *shopify.Fulfillment
	fulfillErr   error
	lastFulfillment shopify.FulfillmentInput
}

func (c *fakePlatformClient) AuthorizeURL(shop, scopes, redirectURI, state string) string {
	return "https://" + shop + "/admin/oauth/authorize?state=" + state
}

func (c *fakePlatformClient) AppURL(shop string) string {
	return "https://" + shop + "/admin/apps/test"
}

func (c *fakePlatformClient) ExchangeToken(context.Context, string, string) (*shopify.AccessToken, error) {
	return &shopify.AccessToken{AccessToken: "shpat_abc", Scope: "read_orders"}, nil
}

func (c *fakePlatformClient) ListOrders(context.Context, string, string, shopify.OrderListOptions) ([]shopify.Order, error) {
	return c.orders, c.ordersErr
}

func (c *fakePlatformClient) CreateFulfillment(_ context.Context, _, _ string, _ int64, input shopify.FulfillmentInput) (*shopify.Fulfillment, error) {
	c.lastFulfillment = input
	return c.fulfillment, c.fulfillErr
}

func (c *fakePlatformClient) RegisterWebhook(context.Context, string, string, string, string) error {
	return nil
}
