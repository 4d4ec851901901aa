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

type SenderConfigHandler struct {
	configUsecase *usecases.SenderConfigUsecase
}

func NewSenderConfigHandler(configUsecase *usecases.SenderConfigUsecase) *SenderConfigHandler {
	return &SenderConfigHandler{configUsecase: configUsecase}
}

// GetForAdmin returns the full config for the admin form, or an empty
// object when nothing is saved yet: GET /api/app/sender-config
func (h *SenderConfigHandler) GetForAdmin(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	cfg, err := h.configUsecase.GetForAdmin(c.Request.Context(), shopDomain)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cfg == nil {
		response.Success(c, http.StatusOK, gin.H{"success": true, "config": gin.H{}})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "config": cfg})
}

// GetForExtension returns the whitelisted projection: GET /api/sender-config
func (h *SenderConfigHandler) GetForExtension(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	view, err := h.configUsecase.GetForExtension(c.Request.Context(), shopDomain)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "config": view})
}

// Save upserts the config wholesale: POST /api/sender-config
func (h *SenderConfigHandler) Save(c *gin.Context) {
	shopDomain, ok := middleware.GetShopDomain(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing shop context"))
		return
	}

	var input entities.SenderConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return
	}

	cfg, err := h.configUsecase.Save(c.Request.Context(), shopDomain, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "config": cfg})
}
