package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/shopify"
	"shipping-bridge.backend/internal/usecases"
)

func TestListPending_ReshapesOrders(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("ListOrders", mock.Anything, "foo.myshopify.com", "shpat_abc", shopify.OrderListOptions{
		Status:            "any",
		FinancialStatus:   "paid",
		FulfillmentStatus: "unfulfilled",
		Limit:             50,
	}).Return([]shopify.Order{
		{
			ID:          1001,
			OrderNumber: 42,
			Name:        "#1042",
			TotalPrice:  "2500.00",
			Currency:    "CRC",
			Customer:    &shopify.Customer{FirstName: "Ana", LastName: "Mora", Email: "ana@example.com"},
			LineItems: []shopify.LineItem{
				{Title: "Camiseta", Quantity: 2, Price: "1250.00"},
			},
			NoteAttributes: []shopify.NoteAttribute{
				{Name: "provincia_id", Value: "1"},
				{Name: "provincia_nombre", Value: "San José"},
				{Name: "canton_id", Value: "01"},
				{Name: "canton_nombre", Value: "San José"},
				{Name: "distrito_id", Value: "03"},
				{Name: "distrito_nombre", Value: "Hospital"},
				{Name: "gift_note", Value: "fragile"},
			},
		},
		{
			// No customer, no note attributes.
			ID:          1002,
			OrderNumber: 43,
			Name:        "#1043",
		},
	}, nil)

	orders, err := uc.ListPending(context.Background(), "foo.myshopify.com", "shpat_abc")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, int64(1001), first.ID)
	require.NotNil(t, first.Customer)
	assert.Equal(t, "Ana Mora", first.Customer.Name)
	assert.Equal(t, "San José", first.ProvinceName)
	assert.Equal(t, "03", first.DistrictID)
	assert.Equal(t, "Hospital", first.DistrictName)
	require.Len(t, first.LineItems, 1)
	assert.Equal(t, "Camiseta", first.LineItems[0].Title)

	// note attributes pass through verbatim, lifting the location fields
	// does not consume them
	require.Len(t, first.NoteAttributes, 7)
	assert.Contains(t, first.NoteAttributes, shopify.NoteAttribute{Name: "gift_note", Value: "fragile"})
	assert.Contains(t, first.NoteAttributes, shopify.NoteAttribute{Name: "provincia_id", Value: "1"})

	second := orders[1]
	assert.Nil(t, second.Customer)
	assert.Empty(t, second.ProvinceID)
	assert.NotNil(t, second.LineItems) // empty list, not null
}

func TestListPending_CustomerNameFlattening(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("ListOrders", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]shopify.Order{
			{ID: 1, Customer: &shopify.Customer{FirstName: "Ana"}},
			{ID: 2, Customer: &shopify.Customer{LastName: "Mora"}},
		}, nil)

	orders, err := uc.ListPending(context.Background(), "foo.myshopify.com", "shpat_abc")
	require.NoError(t, err)
	assert.Equal(t, "Ana", orders[0].Customer.Name)
	assert.Equal(t, "Mora", orders[1].Customer.Name)
}

func TestListPending_UpstreamErrorSurfacesBody(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("ListOrders", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &shopify.APIError{StatusCode: 429, Body: `{"errors":"Exceeded 2 calls per second"}`})

	_, err := uc.ListPending(context.Background(), "foo.myshopify.com", "shpat_abc")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.Message, "Exceeded 2 calls per second")
}

func TestUpdateTracking_RequiresOrderAndNumber(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	cases := []usecases.UpdateTrackingInput{
		{},
		{OrderID: 1001},
		{TrackingNumber: "TRK-1"},
	}
	for _, input := range cases {
		_, err := uc.UpdateTracking(context.Background(), "foo.myshopify.com", "shpat_abc", input)
		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}
	client.AssertNotCalled(t, "CreateFulfillment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTracking_DefaultCarrierAndNotify(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("CreateFulfillment", mock.Anything, "foo.myshopify.com", "shpat_abc", int64(1001),
		shopify.FulfillmentInput{
			TrackingNumber:  "TRK-1",
			TrackingCompany: "Correos de Costa Rica",
			NotifyCustomer:  true,
		}).Return(&shopify.Fulfillment{ID: 77, OrderID: 1001, Status: "success"}, nil)

	f, err := uc.UpdateTracking(context.Background(), "foo.myshopify.com", "shpat_abc",
		usecases.UpdateTrackingInput{OrderID: 1001, TrackingNumber: "TRK-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(77), f.ID)
	client.AssertExpectations(t)
}

func TestUpdateTracking_ExplicitCarrierWins(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("CreateFulfillment", mock.Anything, mock.Anything, mock.Anything, int64(1001),
		shopify.FulfillmentInput{
			TrackingNumber:  "TRK-1",
			TrackingCompany: "DHL",
			NotifyCustomer:  true,
		}).Return(&shopify.Fulfillment{ID: 78}, nil)

	_, err := uc.UpdateTracking(context.Background(), "foo.myshopify.com", "shpat_abc",
		usecases.UpdateTrackingInput{OrderID: 1001, TrackingNumber: "TRK-1", TrackingCompany: "DHL"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUpdateTracking_UpstreamError(t *testing.T) {
	client := new(MockPlatformClient)
	uc := usecases.NewOrderUsecase(client, "Correos de Costa Rica")

	client.On("CreateFulfillment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &shopify.APIError{StatusCode: 422, Body: `{"errors":"already fulfilled"}`})

	_, err := uc.UpdateTracking(context.Background(), "foo.myshopify.com", "shpat_abc",
		usecases.UpdateTrackingInput{OrderID: 1001, TrackingNumber: "TRK-1"})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.Message, "already fulfilled")
}
