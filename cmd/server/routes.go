package main

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/internal/interfaces/http/handlers"
)

//go:embed index.html
var adminPage []byte

type routeDeps struct {
	authHandler             *handlers.AuthHandler
	extensionKeyHandler     *handlers.ExtensionKeyHandler
	senderConfigHandler     *handlers.SenderConfigHandler
	orderHandler            *handlers.OrderHandler
	webhookHandler          *handlers.WebhookHandler
	sessionAuthMiddleware   gin.HandlerFunc
	extensionAuthMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// OAuth install flow (public)
		api.GET("/auth", d.authHandler.Initiate)
		api.GET("/auth/callback", d.authHandler.Callback)

		// Embedded admin UI (session token auth)
		app := api.Group("/app")
		app.Use(d.sessionAuthMiddleware)
		{
			app.GET("/extension-keys", d.extensionKeyHandler.List)
			app.POST("/extension-keys", d.extensionKeyHandler.Create)
			app.DELETE("/extension-keys/:accessKey", d.extensionKeyHandler.Revoke)
			app.GET("/sender-config", d.senderConfigHandler.GetForAdmin)
		}

		// Companion extension (sk_ key auth)
		api.GET("/sender-config", d.extensionAuthMiddleware, d.senderConfigHandler.GetForExtension)
		api.POST("/sender-config", d.extensionAuthMiddleware, d.senderConfigHandler.Save)

		orders := api.Group("/orders")
		orders.Use(d.extensionAuthMiddleware)
		{
			orders.GET("/pending", d.orderHandler.ListPending)
			orders.POST("/update-tracking", d.orderHandler.UpdateTracking)
		}

		// Platform webhooks (HMAC over raw body)
		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("", d.webhookHandler.Probe)
			webhooks.POST("/app/uninstalled", d.webhookHandler.AppUninstalled)
			webhooks.POST("/customers/data_request", d.webhookHandler.CustomersDataRequest)
			webhooks.POST("/customers/redact", d.webhookHandler.CustomersRedact)
			webhooks.POST("/shop/redact", d.webhookHandler.ShopRedact)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, shopRepo repositories.ShopRepository) {
	r.GET("/api/health", func(c *gin.Context) {
		activeShops, err := shopRepo.CountActive(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"service":     "shipping-bridge-backend",
			"activeShops": activeShops,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerAdminPage(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", adminPage)
	})
}
