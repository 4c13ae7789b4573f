// internal/domain/order/entity.go
package order

import (
	"time"
)

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusRefunded   = "refunded"
	StatusCancelled  = "cancelled"
)

// OrderItem represents a purchased prompt with its download entitlement
type OrderItem struct {
	ID            string `json:"id"`
	PromptID      string `json:"prompt_id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"` // In cents, at time of purchase
	DownloadURL   string `json:"download_url,omitempty"`
	DownloadCount int    `json:"download_count"`
	MaxDownloads  int    `json:"max_downloads"`
}

// Order represents a completed (or in-flight) purchase. Monetary fields are
// snapshots of the cart at checkout time.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	UserID        uint        `json:"user_id"`
	Items         []OrderItem `json:"items"`
	Subtotal      int64       `json:"subtotal"` // In cents
	Discount      int64       `json:"discount"` // In cents
	Total         int64       `json:"total"`    // In cents
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	CouponCode    string      `json:"coupon_code,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CanDownload reports whether the item still has downloads remaining
func (i *OrderItem) CanDownload() bool {
	return i.DownloadCount < i.MaxDownloads
}
