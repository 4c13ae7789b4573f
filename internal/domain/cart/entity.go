// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// CartItem represents a single prompt in a cart. Prompts are digital goods,
// so quantity is always 1 and a prompt appears at most once per cart.
type CartItem struct {
	PromptID string    `json:"prompt_id"`
	Quantity int       `json:"quantity"`
	Price    int64     `json:"price"` // Price in cents at time of adding
	AddedAt  time.Time `json:"added_at"`
}

// Cart represents a shopping cart. Subtotal, Discount and Total are derived
// fields recomputed after every mutation; they are never edited directly.
type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Subtotal   int64      `json:"subtotal"` // In cents
	Discount   int64      `json:"discount"` // In cents
	Total      int64      `json:"total"`    // In cents
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// New returns an empty cart for the given session
func New(sessionID string, now time.Time) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// findItem returns the index of the item holding promptID, or -1
func (c *Cart) findItem(promptID string) int {
	for i := range c.Items {
		if c.Items[i].PromptID == promptID {
			return i
		}
	}
	return -1
}

// HasItem reports whether the cart already contains the prompt
func (c *Cart) HasItem(promptID string) bool {
	return c.findItem(promptID) >= 0
}

// ItemCount returns the sum of item quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
