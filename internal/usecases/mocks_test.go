package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipping-bridge.backend/internal/domain/entities"
	"shipping-bridge.backend/internal/infrastructure/shopify"
)

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Upsert(ctx context.Context, shop *entities.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) FindByDomain(ctx context.Context, domain string) (*entities.Shop, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Shop), args.Error(1)
}

func (m *MockShopRepository) Deactivate(ctx context.Context, domain string) error {
	return m.Called(ctx, domain).Error(0)
}

func (m *MockShopRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) Purge(ctx context.Context, domain string) error {
	return m.Called(ctx, domain).Error(0)
}

type MockExtensionKeyRepository struct {
	mock.Mock
}

func (m *MockExtensionKeyRepository) Create(ctx context.Context, key *entities.ExtensionKey) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockExtensionKeyRepository) FindByKey(ctx context.Context, key string) (*entities.ExtensionKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExtensionKey), args.Error(1)
}

func (m *MockExtensionKeyRepository) ListActiveByShop(ctx context.Context, shopDomain string) ([]*entities.ExtensionKey, error) {
	args := m.Called(ctx, shopDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ExtensionKey), args.Error(1)
}

func (m *MockExtensionKeyRepository) Revoke(ctx context.Context, key string, shopDomain string) error {
	return m.Called(ctx, key, shopDomain).Error(0)
}

func (m *MockExtensionKeyRepository) DeactivateByShop(ctx context.Context, shopDomain string) error {
	return m.Called(ctx, shopDomain).Error(0)
}

func (m *MockExtensionKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockExtensionKeyRepository) DeleteByShop(ctx context.Context, shopDomain string) error {
	return m.Called(ctx, shopDomain).Error(0)
}

type MockSenderConfigRepository struct {
	mock.Mock
}

func (m *MockSenderConfigRepository) Upsert(ctx context.Context, config *entities.SenderConfig) error {
	return m.Called(ctx, config).Error(0)
}

func (m *MockSenderConfigRepository) FindByShop(ctx context.Context, shopDomain string) (*entities.SenderConfig, error) {
	args := m.Called(ctx, shopDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SenderConfig), args.Error(1)
}

func (m *MockSenderConfigRepository) DeleteByShop(ctx context.Context, shopDomain string) error {
	return m.Called(ctx, shopDomain).Error(0)
}

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Put(ctx context.Context, shop, state string, now time.Time) error {
	return m.Called(ctx, shop, state, now).Error(0)
}

func (m *MockStateStore) Get(ctx context.Context, shop string) (string, bool, error) {
	args := m.Called(ctx, shop)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStateStore) Delete(ctx context.Context, shop string) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockStateStore) SweepExpired(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockPlatformClient struct {
	mock.Mock
}

func (m *MockPlatformClient) AuthorizeURL(shop, scopes, redirectURI, state string) string {
	return m.Called(shop, scopes, redirectURI, state).String(0)
}

func (m *MockPlatformClient) AppURL(shop string) string {
	return m.Called(shop).String(0)
}

func (m *MockPlatformClient) ExchangeToken(ctx context.Context, shop, code string) (*shopify.AccessToken, error) {
	args := m.Called(ctx, shop, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.AccessToken), args.Error(1)
}

func (m *MockPlatformClient) ListOrders(ctx context.Context, shop, accessToken string, opts shopify.OrderListOptions) ([]shopify.Order, error) {
	args := m.Called(ctx, shop, accessToken, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shopify.Order), args.Error(1)
}

func (m *MockPlatformClient) CreateFulfillment(ctx context.Context, shop, accessToken string, orderID int64, input shopify.FulfillmentInput) (*shopify.Fulfillment, error) {
	args := m.Called(ctx, shop, accessToken, orderID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.Fulfillment), args.Error(1)
}

func (m *MockPlatformClient) RegisterWebhook(ctx context.Context, shop, accessToken, topic, address string) error {
	return m.Called(ctx, shop, accessToken, topic, address).Error(0)
}
