package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/infrastructure/shopify"
	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/internal/usecases"
)

const (
	hmacHeader       = "X-Shopify-Hmac-Sha256"
	shopDomainHeader = "X-Shopify-Shop-Domain"
)

// WebhookHandler receives platform webhooks. Every topic is verified
// against the raw body HMAC before any payload field is trusted.
type WebhookHandler struct {
	webhookUsecase *usecases.WebhookUsecase
	apiSecret      string
}

func NewWebhookHandler(webhookUsecase *usecases.WebhookUsecase, apiSecret string) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase, apiSecret: apiSecret}
}

// Probe answers unrouted webhook posts so subscription checks see a live
// endpoint: POST /api/webhooks
func (h *WebhookHandler) Probe(c *gin.Context) {
	if _, ok := h.verifiedBody(c); !ok {
		response.Error(c, domainerrors.Unauthorized("hmac verification failed"))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// AppUninstalled handles app/uninstalled: POST /api/webhooks/app/uninstalled
func (h *WebhookHandler) AppUninstalled(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("hmac verification failed"))
		return
	}

	if err := h.webhookUsecase.HandleAppUninstalled(c.Request.Context(), h.shopDomain(c, body)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// CustomersDataRequest handles customers/data_request:
// POST /api/webhooks/customers/data_request
func (h *WebhookHandler) CustomersDataRequest(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("hmac verification failed"))
		return
	}

	if err := h.webhookUsecase.HandleCustomerDataRequest(c.Request.Context(), h.shopDomain(c, body)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// CustomersRedact handles customers/redact:
// POST /api/webhooks/customers/redact
func (h *WebhookHandler) CustomersRedact(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("hmac verification failed"))
		return
	}

	if err := h.webhookUsecase.HandleCustomerRedact(c.Request.Context(), h.shopDomain(c, body)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// ShopRedact handles shop/redact: POST /api/webhooks/shop/redact
func (h *WebhookHandler) ShopRedact(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("hmac verification failed"))
		return
	}

	if err := h.webhookUsecase.HandleShopRedact(c.Request.Context(), h.shopDomain(c, body)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// verifiedBody reads the raw body and checks the webhook HMAC over it.
func (h *WebhookHandler) verifiedBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, false
	}
	if !shopify.VerifyWebhookHMAC(body, c.GetHeader(hmacHeader), h.apiSecret) {
		return nil, false
	}
	return body, true
}

// shopDomain extracts the shop from the payload, falling back to the
// platform header. Uninstall payloads carry `domain`, GDPR payloads
// carry `shop_domain`.
func (h *WebhookHandler) shopDomain(c *gin.Context, body []byte) string {
	var payload struct {
		Domain     string `json:"domain"`
		ShopDomain string `json:"shop_domain"`
	}
	_ = json.Unmarshal(body, &payload)

	if payload.ShopDomain != "" {
		return payload.ShopDomain
	}
	if payload.Domain != "" {
		return payload.Domain
	}
	return c.GetHeader(shopDomainHeader)
}
