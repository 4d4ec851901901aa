package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/internal/usecases"
)

// ExtensionKeyAuthMiddleware authenticates the companion extension via its
// issued `sk_` bearer key.
func ExtensionKeyAuthMiddleware(keys *usecases.ExtensionKeyUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := bearerToken(c)
		if !ok || !strings.HasPrefix(key, entities.ExtensionKeyPrefix) {
			response.AbortWithError(c, domainerrors.Unauthorized("missing or invalid access key"))
			return
		}

		shop, err := keys.Validate(c.Request.Context(), key)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		setShopContext(c, shop)
		c.Next()
	}
}
