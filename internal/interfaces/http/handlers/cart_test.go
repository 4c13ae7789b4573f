// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/cart"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
	"github.com/your-org/promptshop-backend/internal/interfaces/http/middleware"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router, _ := newCartRouterWithService(t)
	return router
}

func newCartRouterWithService(t *testing.T) (*gin.Engine, *cart.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 12
	cfg.Catalog.MaxPageSize = 100

	catalogService := catalog.NewService(catalog.NewStore(catalog.DefaultFixtures()), cfg)
	cartService := cart.NewService(cart.NewMemoryStore(), catalogService, coupon.DefaultBook(), cfg)
	handler := NewCartHandler(cartService, cfg)

	router := gin.New()
	group := router.Group("/cart")
	group.Use(middleware.Session())
	{
		group.GET("", handler.GetCart)
		group.DELETE("", handler.ClearCart)
		group.GET("/count", handler.GetItemCount)
		group.POST("/items", handler.AddItem)
		group.DELETE("/items/:id", handler.RemoveItem)
		group.POST("/coupon", handler.ApplyCoupon)
		group.DELETE("/coupon", handler.RemoveCoupon)
	}
	return router, cartService
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestCartEndpointMintsSessionForNewGuests(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodGet, "/cart", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
}

func TestAddItemReturnsPricedCart(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := cartData(t, w)
	assert.Equal(t, float64(999), data["subtotal"])
	assert.Equal(t, float64(999), data["total"])
	assert.Equal(t, float64(1), data["item_count"])
}

func TestAddDuplicateItemReturnsConflict(t *testing.T) {
	router := newCartRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)
	w := doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddItemRejectsMissingBody(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyCouponFlow(t *testing.T) {
	router := newCartRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-006"}`)
	w := doJSON(t, router, http.MethodPost, "/cart/coupon", "sess-1", `{"code":"save20"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := cartData(t, w)
	assert.Equal(t, "SAVE20", data["coupon_code"])
	assert.Equal(t, float64(500), data["discount"])
	assert.Equal(t, float64(1999), data["total"])
}

func TestApplyCouponValidationFailure(t *testing.T) {
	router := newCartRouter(t)

	// $9.99 cart is below SAVE20's $20.00 minimum
	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)
	w := doJSON(t, router, http.MethodPost, "/cart/coupon", "sess-1", `{"code":"SAVE20"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "below_minimum", body["reason"])
}

func TestUnknownCouponReturnsReason(t *testing.T) {
	router := newCartRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-006"}`)
	w := doJSON(t, router, http.MethodPost, "/cart/coupon", "sess-1", `{"code":"NOPE"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["reason"])
}

func TestRemoveItemAndClear(t *testing.T) {
	router := newCartRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)
	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-002"}`)

	w := doJSON(t, router, http.MethodDelete, "/cart/items/prompt-001", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := cartData(t, w)
	assert.Equal(t, float64(1499), data["total"])

	w = doJSON(t, router, http.MethodDelete, "/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart/count", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), cartData(t, w)["count"])
}

func TestCartsAreScopedToSessionHeader(t *testing.T) {
	router := newCartRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", "sess-1", `{"prompt_id":"prompt-001"}`)

	w := doJSON(t, router, http.MethodGet, "/cart", "sess-2", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := cartData(t, w)
	assert.Equal(t, float64(0), data["item_count"])
}

func TestGuestCannotAddressUserSessionCart(t *testing.T) {
	router, cartService := newCartRouterWithService(t)
	ctx := context.Background()

	userSession := middleware.UserSessionID(2)
	_, err := cartService.AddItem(ctx, userSession, "prompt-006")
	require.NoError(t, err)

	// A guest presenting a user-namespaced session ID gets a fresh
	// session, not the user's cart
	w := doJSON(t, router, http.MethodGet, "/cart", userSession, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), cartData(t, w)["item_count"])
	minted := w.Header().Get("X-Session-ID")
	assert.NotEmpty(t, minted)
	assert.NotEqual(t, userSession, minted)

	// Clearing through the spoofed header leaves the user's cart intact
	w = doJSON(t, router, http.MethodDelete, "/cart", userSession, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := cartService.GetCart(ctx, userSession)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ItemCount)
}
