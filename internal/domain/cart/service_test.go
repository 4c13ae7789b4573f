// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
)

func newTestCartService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 12
	cfg.Catalog.MaxPageSize = 100

	catalogService := catalog.NewService(catalog.NewStore(catalog.DefaultFixtures()), cfg)
	return NewService(NewMemoryStore(), catalogService, coupon.DefaultBook(), cfg)
}

func TestServiceGetCartStartsEmpty(t *testing.T) {
	svc := newTestCartService(t)

	resp, err := svc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.ItemCount)
	assert.Equal(t, int64(0), resp.Total)
}

func TestServiceAddItemLooksUpCatalogPrice(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	resp, err := svc.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(999), resp.Items[0].Price)
	require.NotNil(t, resp.Items[0].Prompt)
	assert.Equal(t, "Ultimate Blog Post Generator", resp.Items[0].Prompt.Title)
	assert.Equal(t, int64(999), resp.Subtotal)
}

func TestServiceAddUnknownPromptFails(t *testing.T) {
	svc := newTestCartService(t)

	_, err := svc.AddItem(context.Background(), "sess-1", "prompt-999")
	assert.Error(t, err)

	// Nothing was persisted
	resp, err := svc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestServiceDuplicateAddDoesNotPersist(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "sess-1", "prompt-001")
	assert.ErrorIs(t, err, ErrDuplicateItem)

	resp, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestServiceCartsAreIsolatedBySession(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestServiceCouponRoundTrip(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "prompt-006") // $24.99
	require.NoError(t, err)

	resp, err := svc.ApplyCoupon(ctx, "sess-1", "save20")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", resp.CouponCode)
	assert.Equal(t, int64(500), resp.Discount)
	assert.Equal(t, int64(1999), resp.Total)

	resp, err = svc.RemoveCoupon(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, resp.CouponCode)
	assert.Equal(t, int64(2499), resp.Total)
}

func TestServiceRejectedCouponIsNotPersisted(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "prompt-001") // $9.99
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(ctx, "sess-1", "SAVE20")
	assert.ErrorIs(t, err, coupon.ErrBelowMinimum)

	resp, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, resp.CouponCode)
	assert.Equal(t, int64(999), resp.Total)
}

func TestServiceClearCart(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "sess-1"))

	resp, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Total)
}

func TestServiceGetItemCount(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	count, err := svc.GetItemCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.AddItem(ctx, "sess-1", "prompt-001")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", "prompt-002")
	require.NoError(t, err)

	count, err = svc.GetItemCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServiceMergeGuestCartSkipsDuplicates(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "guest-1", "prompt-001") // $9.99
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "guest-1", "prompt-006") // $24.99
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user:7", "prompt-001")
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart(ctx, "guest-1", "user:7"))

	resp, err := svc.GetCart(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, int64(3498), resp.Subtotal)

	// The guest cart is gone after the merge
	guest, err := svc.GetCart(ctx, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, guest.Items)
}

func TestServiceMergeGuestCartCarriesCouponOver(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "guest-1", "prompt-006") // $24.99
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "guest-1", "SAVE20")
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart(ctx, "guest-1", "user:7"))

	resp, err := svc.GetCart(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", resp.CouponCode)
	assert.Equal(t, int64(500), resp.Discount)
	assert.Equal(t, int64(1999), resp.Total)
}

func TestServiceMergeGuestCartKeepsUserCoupon(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "guest-1", "prompt-002") // $14.99
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "guest-1", "WELCOME10")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "user:7", "prompt-006") // $24.99
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "user:7", "SAVE20")
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart(ctx, "guest-1", "user:7"))

	// The signed-in coupon wins and is recomputed against the merged subtotal
	resp, err := svc.GetCart(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", resp.CouponCode)
	assert.Equal(t, int64(3998), resp.Subtotal)
	assert.Equal(t, int64(800), resp.Discount)
	assert.Equal(t, int64(3198), resp.Total)
}

func TestServiceMergeGuestCartEmptyGuestIsNoOp(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:7", "prompt-001")
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart(ctx, "guest-1", "user:7"))
	require.NoError(t, svc.MergeGuestCart(ctx, "user:7", "user:7"))

	resp, err := svc.GetCart(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ItemCount)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (*Cart, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Save(context.Context, *Cart) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestServiceGetItemCountSurfacesStoreFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 12
	cfg.Catalog.MaxPageSize = 100

	catalogService := catalog.NewService(catalog.NewStore(catalog.DefaultFixtures()), cfg)
	svc := NewService(failingStore{}, catalogService, coupon.DefaultBook(), cfg)

	_, err := svc.GetItemCount(context.Background(), "sess-1")
	assert.Error(t, err)
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := New("sess-1", testNow)
	c.Items = append(c.Items, CartItem{PromptID: "prompt-001", Quantity: 1, Price: 999, AddedAt: testNow})
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	loaded.Items[0].Price = 1

	again, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(999), again.Items[0].Price)
}
