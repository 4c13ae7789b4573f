// internal/domain/cart/pricing.go
package cart

import (
	"errors"
	"time"

	"github.com/your-org/promptshop-backend/internal/domain/coupon"
)

// ErrDuplicateItem signals an add of a prompt that is already in the cart.
// The cart is left unchanged; the caller decides how to notify.
var ErrDuplicateItem = errors.New("prompt is already in the cart")

// AddItem appends a new item and recomputes totals. Adding a prompt that is
// already present is rejected with ErrDuplicateItem and does not modify the
// cart.
func AddItem(c *Cart, book *coupon.Book, promptID string, price int64, now time.Time) error {
	if c.HasItem(promptID) {
		return ErrDuplicateItem
	}
	c.Items = append(c.Items, CartItem{
		PromptID: promptID,
		Quantity: 1,
		Price:    price,
		AddedAt:  now,
	})
	c.UpdatedAt = now
	Recalculate(c, book)
	return nil
}

// RemoveItem deletes the item holding promptID and recomputes totals.
// Removing an absent prompt is a silent no-op.
func RemoveItem(c *Cart, book *coupon.Book, promptID string, now time.Time) {
	i := c.findItem(promptID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.UpdatedAt = now
	Recalculate(c, book)
}

// Clear empties the cart: items, coupon and all monetary fields
func Clear(c *Cart, now time.Time) {
	c.Items = []CartItem{}
	c.CouponCode = ""
	c.Subtotal = 0
	c.Discount = 0
	c.Total = 0
	c.UpdatedAt = now
}

// ApplyCoupon validates the code against the current subtotal and, on
// success, stores it on the cart and recomputes totals. A previously applied
// coupon is replaced; applying the same valid code twice yields the same
// result. Failures leave the cart unchanged.
func ApplyCoupon(c *Cart, book *coupon.Book, code string, now time.Time) error {
	redeemed, err := book.Redeem(code, c.Subtotal, now)
	if err != nil {
		return err
	}
	c.CouponCode = redeemed.Code
	c.UpdatedAt = now
	Recalculate(c, book)
	return nil
}

// RemoveCoupon clears the applied coupon and restores total to subtotal
func RemoveCoupon(c *Cart, now time.Time) {
	c.CouponCode = ""
	c.Discount = 0
	c.Total = c.Subtotal
	c.UpdatedAt = now
}

// Recalculate recomputes the derived monetary fields from the item list and
// the applied coupon. Each field is an independent whole-cent amount:
// subtotal is the exact item sum, percentage discounts round to the nearest
// cent against the new subtotal, fixed discounts keep their amount but never
// exceed the subtotal, and total floors at zero.
func Recalculate(c *Cart, book *coupon.Book) {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	c.Subtotal = subtotal

	c.Discount = 0
	if c.CouponCode != "" {
		if applied, ok := book.Lookup(c.CouponCode); ok {
			c.Discount = applied.Discount(subtotal)
		}
	}

	c.Total = subtotal - c.Discount
	if c.Total < 0 {
		c.Total = 0
	}
}
