// internal/domain/order/store.go
package order

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Store is a mutex-guarded in-memory order table. Orders do not survive a
// restart; this storefront has no durable backend by design.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]*Order
	byUser map[uint][]string
}

// NewStore creates an empty order store
func NewStore() *Store {
	return &Store{
		byID:   make(map[string]*Order),
		byUser: make(map[uint][]string),
	}
}

// Create inserts a new order
func (s *Store) Create(o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[o.ID]; exists {
		return fmt.Errorf("order %s already exists", o.ID)
	}

	s.byID[o.ID] = o
	s.byUser[o.UserID] = append(s.byUser[o.UserID], o.ID)
	return nil
}

// FindByID looks up an order
func (s *Store) FindByID(id string) (*Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	copied := cloneOrder(o)
	return copied, true
}

// ListByUser returns a user's orders, newest first
func (s *Store) ListByUser(userID uint) []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	orders := make([]*Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := s.byID[id]; ok {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

// ListAll returns all orders, newest first
func (s *Store) ListAll() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*Order, 0, len(s.byID))
	for _, o := range s.byID {
		orders = append(orders, cloneOrder(o))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

// Update applies fn to the stored order under the write lock
func (s *Store) Update(id string, fn func(*Order) error) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("order not found")
	}

	if err := fn(o); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now().UTC()

	return cloneOrder(o), nil
}

// Count returns the number of orders
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func cloneOrder(o *Order) *Order {
	copied := *o
	copied.Items = append([]OrderItem(nil), o.Items...)
	return &copied
}
