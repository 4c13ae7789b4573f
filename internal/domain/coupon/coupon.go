// internal/domain/coupon/coupon.go
package coupon

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Discount kinds
const (
	KindPercentage = "percentage"
	KindFixed      = "fixed"
)

// Validation failures returned by Book.Redeem. All are recoverable,
// caller-visible conditions.
var (
	ErrNotFound     = errors.New("coupon not found")
	ErrInactive     = errors.New("coupon is no longer active")
	ErrBelowMinimum = errors.New("cart subtotal is below the coupon minimum purchase")
	ErrExpired      = errors.New("coupon has expired")
)

// Coupon represents a discount code fixture record
type Coupon struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Kind        string     `json:"kind"` // percentage or fixed
	Value       float64    `json:"value"`
	MinPurchase int64      `json:"min_purchase,omitempty"` // In cents, 0 means no threshold
	MaxUses     int        `json:"max_uses,omitempty"`     // Declared but not enforced
	UsedCount   int        `json:"used_count"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// Discount computes the discount this coupon grants against a subtotal.
// Amounts are cents; the percentage branch rounds to the nearest cent and the
// fixed branch is capped at the subtotal so the total never goes negative.
func (c *Coupon) Discount(subtotal int64) int64 {
	var discount int64
	if c.Kind == KindPercentage {
		discount = int64(math.Round(float64(subtotal) * c.Value / 100))
	} else {
		discount = int64(math.Round(c.Value * 100))
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// Book is a read-only coupon lookup table keyed by upper-case code. It is
// passed into the cart service at construction so tests can supply their own.
type Book struct {
	coupons map[string]Coupon
}

// NewBook builds a coupon book from fixture records
func NewBook(coupons []Coupon) *Book {
	book := &Book{coupons: make(map[string]Coupon, len(coupons))}
	for _, c := range coupons {
		book.coupons[strings.ToUpper(c.Code)] = c
	}
	return book
}

// Lookup finds a coupon by case-insensitive code match
func (b *Book) Lookup(code string) (*Coupon, bool) {
	c, ok := b.coupons[strings.ToUpper(code)]
	if !ok {
		return nil, false
	}
	return &c, true
}

// Redeem validates a coupon against the current cart subtotal.
// Checks run in a fixed order: existence, active flag, minimum purchase,
// expiry. MaxUses is deliberately not checked; the used-count field is
// informational only.
func (b *Book) Redeem(code string, subtotal int64, now time.Time) (*Coupon, error) {
	c, ok := b.Lookup(code)
	if !ok {
		return nil, ErrNotFound
	}
	if !c.IsActive {
		return nil, ErrInactive
	}
	if c.MinPurchase > 0 && subtotal < c.MinPurchase {
		return nil, ErrBelowMinimum
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return nil, ErrExpired
	}
	return c, nil
}
