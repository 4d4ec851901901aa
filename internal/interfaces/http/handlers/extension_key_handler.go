package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/interfaces/http/middleware"
	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/internal/usecases"
)

type ExtensionKeyHandler struct {
	keyUsecase *usecases.ExtensionKeyUsecase
}

func NewExtensionKeyHandler(keyUsecase *usecases.ExtensionKeyUsecase) *ExtensionKeyHandler {
	return &ExtensionKeyHandler{keyUsecase: keyUsecase}
}

// List returns the shop's active keys: GET /api/app/extension-keys
func (h *ExtensionKeyHandler) List(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	keys, err := h.keyUsecase.List(c.Request.Context(), shopDomain)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "keys": keys})
}

// Create mints a new key: POST /api/app/extension-keys
func (h *ExtensionKeyHandler) Create(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	// Body is optional; an absent or empty name gets the default.
	var input entities.CreateExtensionKeyInput
	_ = c.ShouldBindJSON(&input)

	key, err := h.keyUsecase.Create(c.Request.Context(), shopDomain, input.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"success": true, "key": key})
}

// Revoke deactivates a key: DELETE /api/app/extension-keys/:accessKey
func (h *ExtensionKeyHandler) Revoke(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	if err := h.keyUsecase.Revoke(c.Request.Context(), shopDomain, c.Param("accessKey")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
