// internal/domain/cart/pricing_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func testBook() *coupon.Book {
	return coupon.DefaultBook()
}

func TestAddItemComputesTotals(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-001", 999, testNow))
	require.NoError(t, AddItem(c, book, "prompt-002", 1499, testNow))

	assert.Equal(t, int64(2498), c.Subtotal)
	assert.Equal(t, int64(0), c.Discount)
	assert.Equal(t, int64(2498), c.Total)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddDuplicateItemLeavesCartUnchanged(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-001", 999, testNow))
	before := *c

	err := AddItem(c, book, "prompt-001", 999, testNow.Add(time.Minute))
	assert.ErrorIs(t, err, ErrDuplicateItem)

	assert.Equal(t, before.Subtotal, c.Subtotal)
	assert.Equal(t, before.Total, c.Total)
	assert.Equal(t, before.UpdatedAt, c.UpdatedAt)
	assert.Len(t, c.Items, 1)
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-001", 999, testNow))
	before := c.UpdatedAt

	RemoveItem(c, book, "prompt-999", testNow.Add(time.Minute))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, before, c.UpdatedAt)
}

func TestRemoveItemRecomputesDiscount(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-006", 2499, testNow))
	require.NoError(t, AddItem(c, book, "prompt-008", 2999, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))

	// 20% of $54.98 is $11.00 (1099.6 cents rounds up)
	assert.Equal(t, int64(5498), c.Subtotal)
	assert.Equal(t, int64(1100), c.Discount)
	assert.Equal(t, int64(4398), c.Total)

	RemoveItem(c, book, "prompt-008", testNow)

	// Discount re-rounds against the new subtotal
	assert.Equal(t, int64(2499), c.Subtotal)
	assert.Equal(t, int64(500), c.Discount)
	assert.Equal(t, int64(1999), c.Total)
}

func TestRemoveLastItemWithPercentageCouponZeroesTotals(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-006", 2499, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))

	RemoveItem(c, book, "prompt-006", testNow)

	assert.Equal(t, int64(0), c.Subtotal)
	assert.Equal(t, int64(0), c.Discount)
	assert.Equal(t, int64(0), c.Total)
	// The coupon code itself stays applied
	assert.Equal(t, "SAVE20", c.CouponCode)
}

func TestClearResetsEverything(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-001", 999, testNow))
	require.NoError(t, AddItem(c, book, "prompt-002", 1499, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))

	Clear(c, testNow.Add(time.Minute))

	assert.Empty(t, c.Items)
	assert.Empty(t, c.CouponCode)
	assert.Equal(t, int64(0), c.Subtotal)
	assert.Equal(t, int64(0), c.Discount)
	assert.Equal(t, int64(0), c.Total)
	assert.True(t, c.IsEmpty())
}

func TestApplyCouponPercentage(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	// Build a $100.00 cart
	require.NoError(t, AddItem(c, book, "a", 2999, testNow))
	require.NoError(t, AddItem(c, book, "b", 2499, testNow))
	require.NoError(t, AddItem(c, book, "c", 2499, testNow))
	require.NoError(t, AddItem(c, book, "d", 2003, testNow))
	require.Equal(t, int64(10000), c.Subtotal)

	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))

	assert.Equal(t, "SAVE20", c.CouponCode)
	assert.Equal(t, int64(2000), c.Discount)
	assert.Equal(t, int64(8000), c.Total)
}

func TestApplyCouponIsIdempotent(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-006", 2499, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))
	first := *c

	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))

	assert.Equal(t, first.Discount, c.Discount)
	assert.Equal(t, first.Total, c.Total)
}

func TestApplyCouponReplacesPrevious(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-008", 2999, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))
	require.Equal(t, int64(600), c.Discount)

	require.NoError(t, ApplyCoupon(c, book, "WELCOME10", testNow))

	assert.Equal(t, "WELCOME10", c.CouponCode)
	assert.Equal(t, int64(300), c.Discount)
	assert.Equal(t, int64(2699), c.Total)
}

func TestApplyCouponFailureLeavesCartUnchanged(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	// $24.99 is below FLAT15's $50.00 minimum
	require.NoError(t, AddItem(c, book, "prompt-006", 2499, testNow))
	before := *c

	err := ApplyCoupon(c, book, "FLAT15", testNow)
	assert.ErrorIs(t, err, coupon.ErrBelowMinimum)

	assert.Empty(t, c.CouponCode)
	assert.Equal(t, before.Subtotal, c.Subtotal)
	assert.Equal(t, before.Discount, c.Discount)
	assert.Equal(t, before.Total, c.Total)
}

func TestRemoveCouponRestoresTotal(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	require.NoError(t, AddItem(c, book, "prompt-006", 2499, testNow))
	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))
	require.Equal(t, int64(1999), c.Total)

	RemoveCoupon(c, testNow)

	assert.Empty(t, c.CouponCode)
	assert.Equal(t, int64(0), c.Discount)
	assert.Equal(t, c.Subtotal, c.Total)
}

func TestTotalNeverGoesNegative(t *testing.T) {
	c := New("sess-1", testNow)
	book := coupon.NewBook([]coupon.Coupon{
		{ID: "c1", Code: "BIG", Kind: coupon.KindFixed, Value: 50, IsActive: true},
	})

	// $9.99 cart with a $50 fixed coupon
	require.NoError(t, AddItem(c, book, "prompt-001", 999, testNow))
	require.NoError(t, ApplyCoupon(c, book, "BIG", testNow))

	assert.Equal(t, int64(999), c.Discount)
	assert.Equal(t, int64(0), c.Total)
}

func TestRecalculateInvariant(t *testing.T) {
	c := New("sess-1", testNow)
	book := testBook()

	prices := []int64{999, 1499, 799, 1999, 2499}
	for i, p := range prices {
		require.NoError(t, AddItem(c, book, string(rune('a'+i)), p, testNow))
		assert.Equal(t, c.Subtotal-c.Discount, c.Total)
	}

	require.NoError(t, ApplyCoupon(c, book, "SAVE20", testNow))
	assert.Equal(t, c.Subtotal-c.Discount, c.Total)
}
