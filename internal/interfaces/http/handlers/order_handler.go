package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/interfaces/http/middleware"
	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/internal/usecases"
)

type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// ListPending proxies paid, unfulfilled orders: GET /api/orders/pending
func (h *OrderHandler) ListPending(c *gin.Context) {
	shopDomain, accessToken, ok := shopCredentials(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	orders, err := h.orderUsecase.ListPending(c.Request.Context(), shopDomain, accessToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "orders": orders})
}

// UpdateTracking fulfills an order with a tracking number:
// POST /api/orders/update-tracking
func (h *OrderHandler) UpdateTracking(c *gin.Context) {
	shopDomain, accessToken, ok := shopCredentials(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	var input usecases.UpdateTrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("order_id and tracking_number are required"))
		return
	}

	fulfillment, err := h.orderUsecase.UpdateTracking(c.Request.Context(), shopDomain, accessToken, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "fulfillment": fulfillment})
}

func shopCredentials(c *gin.Context) (string, string, bool) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		return "", "", false
	}
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		return "", "", false
	}
	return shopDomain, accessToken, true
}
