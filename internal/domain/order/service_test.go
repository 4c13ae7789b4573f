// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/cart"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
)

func newTestOrderService(t *testing.T) (*Service, *cart.Service) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 12
	cfg.Catalog.MaxPageSize = 100
	cfg.Store.MaxDownloads = 2

	catalogService := catalog.NewService(catalog.NewStore(catalog.DefaultFixtures()), cfg)
	cartService := cart.NewService(cart.NewMemoryStore(), catalogService, coupon.DefaultBook(), cfg)
	return NewService(NewStore(), cartService, catalogService, cfg), cartService
}

func checkoutFixtureCart(t *testing.T, svc *Service, carts *cart.Service, userID uint, sessionID string) *Order {
	t.Helper()
	ctx := context.Background()

	_, err := carts.AddItem(ctx, sessionID, "prompt-006") // $24.99
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, sessionID, "prompt-008") // $29.99
	require.NoError(t, err)
	_, err = carts.ApplyCoupon(ctx, sessionID, "SAVE20")
	require.NoError(t, err)

	o, err := svc.Checkout(ctx, userID, sessionID, &CheckoutRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	return o
}

func TestCheckoutSnapshotsCartTotals(t *testing.T) {
	svc, carts := newTestOrderService(t)

	o := checkoutFixtureCart(t, svc, carts, 1, "sess-1")

	assert.Equal(t, int64(5498), o.Subtotal)
	assert.Equal(t, int64(1100), o.Discount)
	assert.Equal(t, int64(4398), o.Total)
	assert.Equal(t, "SAVE20", o.CouponCode)
	assert.Equal(t, StatusCompleted, o.Status)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Discovery Call Script Generator", o.Items[0].Title)
	assert.Contains(t, o.Items[0].DownloadURL, o.ID)
	assert.Contains(t, o.OrderNumber, "PS-")
}

func TestCheckoutClearsCart(t *testing.T) {
	svc, carts := newTestOrderService(t)

	checkoutFixtureCart(t, svc, carts, 1, "sess-1")

	resp, err := carts.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Checkout(context.Background(), 1, "sess-empty", &CheckoutRequest{PaymentMethod: "card"})
	assert.Error(t, err)
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	svc, carts := newTestOrderService(t)

	o := checkoutFixtureCart(t, svc, carts, 1, "sess-1")

	found, err := svc.GetOrder(1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.ID)

	_, err = svc.GetOrder(2, o.ID)
	assert.Error(t, err)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, carts := newTestOrderService(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)
	first, err := svc.Checkout(ctx, 1, "sess-1", &CheckoutRequest{PaymentMethod: "card"})
	require.NoError(t, err)

	_, err = carts.AddItem(ctx, "sess-1", "prompt-002")
	require.NoError(t, err)
	second, err := svc.Checkout(ctx, 1, "sess-1", &CheckoutRequest{PaymentMethod: "card"})
	require.NoError(t, err)

	orders := svc.ListOrders(1)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	assert.Empty(t, svc.ListOrders(2))
}

func TestDownloadEnforcesLimit(t *testing.T) {
	svc, carts := newTestOrderService(t)

	o := checkoutFixtureCart(t, svc, carts, 1, "sess-1")
	item := o.Items[0]

	// MaxDownloads is 2 in the test config
	for i := 0; i < 2; i++ {
		prompt, err := svc.Download(1, o.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.PromptID, prompt.ID)
	}

	_, err := svc.Download(1, o.ID, item.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download limit")
}

func TestDownloadRejectsOtherUsers(t *testing.T) {
	svc, carts := newTestOrderService(t)

	o := checkoutFixtureCart(t, svc, carts, 1, "sess-1")

	_, err := svc.Download(2, o.ID, o.Items[0].ID)
	assert.Error(t, err)
}

func TestCancelOnlyAllowsPendingOrProcessing(t *testing.T) {
	svc, carts := newTestOrderService(t)

	// Mock payment settles orders immediately, so a completed order
	// cannot be cancelled.
	o := checkoutFixtureCart(t, svc, carts, 1, "sess-1")
	_, err := svc.Cancel(1, o.ID)
	assert.Error(t, err)

	_, err = svc.Store().Update(o.ID, func(stored *Order) error {
		stored.Status = StatusPending
		return nil
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestOrderItemCanDownload(t *testing.T) {
	item := OrderItem{DownloadCount: 0, MaxDownloads: 1}
	assert.True(t, item.CanDownload())

	item.DownloadCount = 1
	assert.False(t, item.CanDownload())
}
