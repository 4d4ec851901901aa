package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/shopify"
)

// Note-attribute keys written by the storefront checkout widget with the
// buyer's Costa Rica delivery location.
const (
	attrProvinceID   = "provincia_id"
	attrProvinceName = "provincia_nombre"
	attrCantonID     = "canton_id"
	attrCantonName   = "canton_nombre"
	attrDistrictID   = "distrito_id"
	attrDistrictName = "distrito_nombre"
)

const pendingOrdersLimit = 50

type PendingCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PendingLineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// PendingOrder is the reshaped order the extension consumes: the platform
// order trimmed down plus the delivery location lifted out of the note
// attributes.
type PendingOrder struct {
	ID              int64                   `json:"id"`
	OrderNumber     int                     `json:"orderNumber"`
	Name            string                  `json:"name"`
	CreatedAt       string                  `json:"createdAt"`
	TotalPrice      string                  `json:"totalPrice"`
	Currency        string                  `json:"currency"`
	Note            string                  `json:"note"`
	NoteAttributes  []shopify.NoteAttribute `json:"noteAttributes"`
	Customer        *PendingCustomer        `json:"customer"`
	ShippingAddress *shopify.Address        `json:"shippingAddress"`
	LineItems       []PendingLineItem       `json:"lineItems"`
	ProvinceID      string                  `json:"provinceId"`
	ProvinceName    string                  `json:"provinceName"`
	CantonID        string                  `json:"cantonId"`
	CantonName      string                  `json:"cantonName"`
	DistrictID      string                  `json:"districtId"`
	DistrictName    string                  `json:"districtName"`
}

// UpdateTrackingInput is the tracking-update payload from the extension.
type UpdateTrackingInput struct {
	OrderID         int64  `json:"order_id"`
	TrackingNumber  string `json:"tracking_number"`
	TrackingCompany string `json:"tracking_company"`
}

type OrderUsecase struct {
	client         PlatformClient
	defaultCarrier string
}

func NewOrderUsecase(client PlatformClient, defaultCarrier string) *OrderUsecase {
	return &OrderUsecase{client: client, defaultCarrier: defaultCarrier}
}

// ListPending fetches paid, unfulfilled orders and reshapes them for the
// extension.
func (u *OrderUsecase) ListPending(ctx context.Context, shop, accessToken string) ([]PendingOrder, error) {
	orders, err := u.client.ListOrders(ctx, shop, accessToken, shopify.OrderListOptions{
		Status:            "any",
		FinancialStatus:   "paid",
		FulfillmentStatus: "unfulfilled",
		Limit:             pendingOrdersLimit,
	})
	if err != nil {
		return nil, upstreamError("failed to fetch orders", err)
	}

	pending := make([]PendingOrder, 0, len(orders))
	for _, o := range orders {
		pending = append(pending, reshapeOrder(o))
	}
	return pending, nil
}

// UpdateTracking creates a fulfillment carrying the tracking number. The
// carrier falls back to the configured default and the buyer is always
// notified.
func (u *OrderUsecase) UpdateTracking(ctx context.Context, shop, accessToken string, input UpdateTrackingInput) (*shopify.Fulfillment, error) {
	if input.OrderID == 0 || input.TrackingNumber == "" {
		return nil, domainerrors.BadRequest("order_id and tracking_number are required")
	}

	company := input.TrackingCompany
	if company == "" {
		company = u.defaultCarrier
	}

	fulfillment, err := u.client.CreateFulfillment(ctx, shop, accessToken, input.OrderID, shopify.FulfillmentInput{
		TrackingNumber:  input.TrackingNumber,
		TrackingCompany: company,
		NotifyCustomer:  true,
	})
	if err != nil {
		return nil, upstreamError("failed to create fulfillment", err)
	}
	return fulfillment, nil
}

func reshapeOrder(o shopify.Order) PendingOrder {
	attrs := make(map[string]string, len(o.NoteAttributes))
	for _, a := range o.NoteAttributes {
		attrs[a.Name] = a.Value
	}

	var customer *PendingCustomer
	if o.Customer != nil {
		customer = &PendingCustomer{
			Name:  strings.TrimSpace(o.Customer.FirstName + " " + o.Customer.LastName),
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		}
	}

	items := make([]PendingLineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, PendingLineItem{
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    li.Price,
		})
	}

	return PendingOrder{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Name:            o.Name,
		CreatedAt:       o.CreatedAt,
		TotalPrice:      o.TotalPrice,
		Currency:        o.Currency,
		Note:            o.Note,
		NoteAttributes:  o.NoteAttributes,
		Customer:        customer,
		ShippingAddress: o.ShippingAddress,
		LineItems:       items,
		ProvinceID:      attrs[attrProvinceID],
		ProvinceName:    attrs[attrProvinceName],
		CantonID:        attrs[attrCantonID],
		CantonName:      attrs[attrCantonName],
		DistrictID:      attrs[attrDistrictID],
		DistrictName:    attrs[attrDistrictName],
	}
}

// upstreamError keeps the platform's error body in the response message so
// the extension can show what the Admin API rejected.
func upstreamError(prefix string, err error) error {
	var apiErr *shopify.APIError
	if errors.As(err, &apiErr) {
		return domainerrors.Upstream(fmt.Sprintf("%s: %s", prefix, apiErr.Body))
	}
	return domainerrors.Upstream(fmt.Sprintf("%s: %s", prefix, err))
}
