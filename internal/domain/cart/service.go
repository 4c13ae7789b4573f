// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
)

// Service handles cart business logic. All mutating calls for a given
// session are expected to be serialized by the caller; the service itself
// does not lock across load/save.
type Service struct {
	store   Store
	catalog *catalog.Service
	coupons *coupon.Book
	config  *config.Config
}

// NewService creates a new cart service
func NewService(store Store, catalogService *catalog.Service, coupons *coupon.Book, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		catalog: catalogService,
		coupons: coupons,
		config:  cfg,
	}
}

// ItemResponse represents a cart item with prompt details attached
type ItemResponse struct {
	PromptID string          `json:"prompt_id"`
	Quantity int             `json:"quantity"`
	Price    int64           `json:"price"`
	Prompt   *catalog.Prompt `json:"prompt,omitempty"`
	AddedAt  time.Time       `json:"added_at"`
}

// Response represents a cart with items, details and totals
type Response struct {
	SessionID  string         `json:"session_id"`
	Items      []ItemResponse `json:"items"`
	ItemCount  int            `json:"item_count"`
	CouponCode string         `json:"coupon_code,omitempty"`
	Subtotal   int64          `json:"subtotal"`
	Discount   int64          `json:"discount"`
	Total      int64          `json:"total"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	PromptID string `json:"prompt_id" binding:"required"`
}

// ApplyCouponRequest represents a coupon application request
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// AddItem adds a prompt to the cart. Duplicate adds are rejected with
// ErrDuplicateItem and leave the stored cart untouched.
func (s *Service) AddItem(ctx context.Context, sessionID, promptID string) (*Response, error) {
	prompt, err := s.catalog.GetPrompt(promptID)
	if err != nil {
		return nil, fmt.Errorf("prompt not found: %s", promptID)
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := AddItem(c, s.coupons, prompt.ID, prompt.Price, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// RemoveItem removes a prompt from the cart; absent prompts are a no-op
func (s *Service) RemoveItem(ctx context.Context, sessionID, promptID string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	RemoveItem(c, s.coupons, promptID, time.Now().UTC())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// ClearCart empties the cart and drops any applied coupon
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// ApplyCoupon validates and applies a coupon code to the cart
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := ApplyCoupon(c, s.coupons, code, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// RemoveCoupon clears the applied coupon from the cart
func (s *Service) RemoveCoupon(ctx context.Context, sessionID string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	RemoveCoupon(c, time.Now().UTC())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// GetItemCount returns the number of items in the cart. A missing cart
// counts as empty; store failures are surfaced.
func (s *Service) GetItemCount(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.ItemCount(), nil
}

// MergeGuestCart folds a guest session's cart into the signed-in user's
// cart and deletes the guest cart. Prompts already in the user's cart are
// skipped. The user cart's coupon wins; otherwise the guest coupon is
// carried over, dropped silently if it no longer validates against the
// merged subtotal.
func (s *Service) MergeGuestCart(ctx context.Context, guestSessionID, userSessionID string) error {
	if guestSessionID == "" || guestSessionID == userSessionID {
		return nil
	}

	guest, err := s.store.Load(ctx, guestSessionID)
	if err != nil {
		return err
	}
	if len(guest.Items) == 0 {
		return nil
	}

	merged, err := s.store.Load(ctx, userSessionID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, item := range guest.Items {
		if err := AddItem(merged, s.coupons, item.PromptID, item.Price, now); err != nil && !errors.Is(err, ErrDuplicateItem) {
			return err
		}
	}

	if merged.CouponCode == "" && guest.CouponCode != "" {
		_ = ApplyCoupon(merged, s.coupons, guest.CouponCode, now)
	}

	if err := s.store.Save(ctx, merged); err != nil {
		return err
	}
	return s.store.Delete(ctx, guestSessionID)
}

// Snapshot returns the raw stored cart, used by checkout
func (s *Service) Snapshot(ctx context.Context, sessionID string) (*Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// respond converts a stored cart into a response with prompt details
func (s *Service) respond(c *Cart) *Response {
	items := make([]ItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = ItemResponse{
			PromptID: item.PromptID,
			Quantity: item.Quantity,
			Price:    item.Price,
			AddedAt:  item.AddedAt,
		}
		if prompt, err := s.catalog.GetPrompt(item.PromptID); err == nil {
			items[i].Prompt = prompt
		}
	}

	return &Response{
		SessionID:  c.SessionID,
		Items:      items,
		ItemCount:  c.ItemCount(),
		CouponCode: c.CouponCode,
		Subtotal:   c.Subtotal,
		Discount:   c.Discount,
		Total:      c.Total,
		UpdatedAt:  c.UpdatedAt,
	}
}
