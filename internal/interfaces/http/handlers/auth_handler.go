package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/internal/usecases"
)

type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Initiate starts the install flow: GET /api/auth?shop=<domain>
func (h *AuthHandler) Initiate(c *gin.Context) {
	redirect, err := h.authUsecase.BeginInstall(c.Request.Context(), c.Query("shop"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, redirect)
}

// Callback completes the install flow: GET /api/auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	redirect, err := h.authUsecase.CompleteInstall(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, redirect)
}
