package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/internal/domain/entities"
	domainerrors "shipping-bridge.backend/internal/domain/errors"
	"shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/internal/interfaces/http/response"
	"shipping-bridge.backend/pkg/sessiontoken"
)

// Context keys set by the auth middlewares.
const (
	ShopDomainKey  = "shopDomain"
	AccessTokenKey = "shopAccessToken"
)

const bearerPrefix = "Bearer "

// SessionAuthMiddleware authenticates the embedded admin UI via the
// platform session token. The decoded shop must exist and be active; the
// shop lookup is the trust boundary since the token itself is not verified.
func SessionAuthMiddleware(decoder *sessiontoken.Decoder, shopRepo repositories.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.AbortWithError(c, domainerrors.Unauthorized("missing session token"))
			return
		}

		shopDomain, err := decoder.TrustedDecode(token)
		if err != nil {
			response.AbortWithError(c, domainerrors.Unauthorized("invalid session token"))
			return
		}

		shop, err := shopRepo.FindByDomain(c.Request.Context(), shopDomain)
		if err != nil || !shop.IsActive {
			response.AbortWithError(c, domainerrors.Unauthorized("shop is not installed"))
			return
		}

		setShopContext(c, shop)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	return token, token != ""
}

func setShopContext(c *gin.Context, shop *entities.Shop) {
	c.Set(ShopDomainKey, shop.Domain)
	c.Set(AccessTokenKey, shop.AccessToken)
}

// GetShopDomain returns the authenticated shop domain set by an auth
// middleware.
func GetShopDomain(c *gin.Context) (string, bool) {
	domain, ok := c.Value(ShopDomainKey).(string)
	return domain, ok && domain != ""
}

// GetAccessToken returns the authenticated shop's Admin API token.
func GetAccessToken(c *gin.Context) (string, bool) {
	token, ok := c.Value(AccessTokenKey).(string)
	return token, ok && token != ""
}
