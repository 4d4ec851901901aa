package usecases

import (
	"context"

	"shipping-bridge.backend/internal/infrastructure/shopify"
)

// PlatformClient is the slice of the Shopify client the usecases depend on.
type PlatformClient interface {
	AuthorizeURL(shop, scopes, redirectURI, state string) string
	AppURL(shop string) string
	ExchangeToken(ctx context.Context, shop, code string) (*shopify.AccessToken, error)
	ListOrders(ctx context.Context, shop, accessToken string, opts shopify.OrderListOptions) ([]shopify.Order, error)
	CreateFulfillment(ctx context.Context, shop, accessToken string, orderID int64, input shopify.FulfillmentInput) (*shopify.Fulfillment, error)
	RegisterWebhook(ctx context.Context, shop, accessToken, topic, address string) error
}
