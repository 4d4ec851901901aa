package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-bridge.backend/internal/config"
	"shipping-bridge.backend/internal/infrastructure/oauthstate"
	"shipping-bridge.backend/internal/interfaces/http/handlers"
	"shipping-bridge.backend/internal/usecases"
)

func newAuthRouter() (*gin.Engine, *oauthstate.MemoryStore) {
	gin.SetMode(gin.TestMode)

	shopRepo := newFakeShopRepo()
	keyRepo := newFakeKeyRepo()
	stateStore := oauthstate.NewMemoryStore()
	client := &fakePlatformClient{}

	keyUsecase := usecases.NewExtensionKeyUsecase(keyRepo, shopRepo)
	authUsecase := usecases.NewAuthUsecase(shopRepo, keyUsecase, stateStore, client, config.ShopifyConfig{
		APIKey:    "test-api-key",
		APISecret: "test-api-secret",
		Scopes:    "read_orders",
		AppURL:    "https://app.example.com",
		StateTTL:  5 * time.Minute,
	})
	h := handlers.NewAuthHandler(authUsecase)

	r := gin.New()
	r.GET("/api/auth", h.Initiate)
	r.GET("/api/auth/callback", h.Callback)
	return r, stateStore
}

func TestAuthInitiate_RedirectsToAuthorize(t *testing.T) {
	r, stateStore := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth?shop=foo.myshopify.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "foo.myshopify.com/admin/oauth/authorize")

	state, ok, err := stateStore.Get(req.Context(), "foo.myshopify.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, location, state)
}

func TestAuthInitiate_RejectsBadShop(t *testing.T) {
	r, _ := newAuthRouter()

	for _, target := range []string{"/api/auth", "/api/auth?shop=evil.example.com"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "target %s", target)
	}
}

func TestAuthCallback_StateMismatchIs403(t *testing.T) {
	r, stateStore := newAuthRouter()
	require.NoError(t, stateStore.Put(httptest.NewRequest("GET", "/", nil).Context(),
		"foo.myshopify.com", "expected-state", time.Now()))

	req := httptest.NewRequest(http.MethodGet,
		"/api/auth/callback?shop=foo.myshopify.com&code=c&state=wrong-state&hmac=deadbeef", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
