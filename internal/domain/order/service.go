// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/cart"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
)

// Service handles order and checkout business logic
type Service struct {
	store       *Store
	cartService *cart.Service
	catalog     *catalog.Service
	config      *config.Config
}

// NewService creates a new order service
func NewService(store *Store, cartService *cart.Service, catalogService *catalog.Service, cfg *config.Config) *Service {
	return &Service{
		store:       store,
		cartService: cartService,
		catalog:     catalogService,
		config:      cfg,
	}
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Checkout converts the session's cart into a completed order. Payment is
// mocked: the order is created already settled, the cart totals are
// snapshotted verbatim, and the cart is cleared afterwards.
func (s *Service) Checkout(ctx context.Context, userID uint, sessionID string, req *CheckoutRequest) (*Order, error) {
	snapshot, err := s.cartService.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if snapshot.IsEmpty() {
		return nil, fmt.Errorf("cart is empty")
	}

	now := time.Now().UTC()
	orderID := uuid.NewString()

	items := make([]OrderItem, len(snapshot.Items))
	for i, item := range snapshot.Items {
		title := item.PromptID
		if prompt, err := s.catalog.GetPrompt(item.PromptID); err == nil {
			title = prompt.Title
		}
		itemID := uuid.NewString()
		items[i] = OrderItem{
			ID:           itemID,
			PromptID:     item.PromptID,
			Title:        title,
			Price:        item.Price,
			DownloadURL:  fmt.Sprintf("/api/v1/orders/%s/items/%s/download", orderID, itemID),
			MaxDownloads: s.config.Store.MaxDownloads,
		}
	}

	o := &Order{
		ID:            orderID,
		OrderNumber:   fmt.Sprintf("PS-%s", now.Format("20060102-150405")),
		UserID:        userID,
		Items:         items,
		Subtotal:      snapshot.Subtotal,
		Discount:      snapshot.Discount,
		Total:         snapshot.Total,
		Status:        StatusCompleted,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    snapshot.CouponCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(o); err != nil {
		return nil, err
	}

	if err := s.cartService.ClearCart(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("order %s created but cart cleanup failed: %w", o.ID, err)
	}

	return o, nil
}

// GetOrder retrieves one of the user's orders
func (s *Service) GetOrder(userID uint, orderID string) (*Order, error) {
	o, ok := s.store.FindByID(orderID)
	if !ok || o.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

// ListOrders returns the user's orders, newest first
func (s *Service) ListOrders(userID uint) []*Order {
	return s.store.ListByUser(userID)
}

// Download records a download against an order item, enforcing the
// per-item download limit.
func (s *Service) Download(userID uint, orderID, itemID string) (*catalog.Prompt, error) {
	o, ok := s.store.FindByID(orderID)
	if !ok || o.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}

	if o.Status != StatusCompleted {
		return nil, fmt.Errorf("order is not completed")
	}

	var promptID string
	_, err := s.store.Update(orderID, func(stored *Order) error {
		for i := range stored.Items {
			if stored.Items[i].ID != itemID {
				continue
			}
			if !stored.Items[i].CanDownload() {
				return fmt.Errorf("download limit reached for this item")
			}
			stored.Items[i].DownloadCount++
			promptID = stored.Items[i].PromptID
			return nil
		}
		return fmt.Errorf("order item not found")
	})
	if err != nil {
		return nil, err
	}

	prompt, err := s.catalog.GetPrompt(promptID)
	if err != nil {
		return nil, fmt.Errorf("prompt no longer available")
	}
	return prompt, nil
}

// Cancel marks a pending or processing order as cancelled
func (s *Service) Cancel(userID uint, orderID string) (*Order, error) {
	o, ok := s.store.FindByID(orderID)
	if !ok || o.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}

	return s.store.Update(orderID, func(stored *Order) error {
		if stored.Status != StatusPending && stored.Status != StatusProcessing {
			return fmt.Errorf("order cannot be cancelled in status %s", stored.Status)
		}
		stored.Status = StatusCancelled
		return nil
	})
}

// Store exposes the backing store for analytics
func (s *Service) Store() *Store {
	return s.store
}
