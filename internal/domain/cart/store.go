// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"
	"time"
)

// Store persists carts keyed by session ID. Persistence is a caching
// concern; the pricing logic never talks to storage directly.
type Store interface {
	// Load returns the cart for the session, or a fresh empty cart if none
	// is stored.
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-process Store used in tests and single-node setups
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

// Load implements Store
func (m *MemoryStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if c, ok := m.carts[sessionID]; ok {
		stored := c
		stored.Items = append([]CartItem(nil), c.Items...)
		return &stored, nil
	}
	return New(sessionID, time.Now().UTC()), nil
}

// Save implements Store
func (m *MemoryStore) Save(_ context.Context, c *Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *c
	stored.Items = append([]CartItem(nil), c.Items...)
	m.carts[c.SessionID] = stored
	return nil
}

// Delete implements Store
func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
	return nil
}
