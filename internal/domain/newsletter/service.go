// internal/domain/newsletter/service.go
package newsletter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscriber represents a newsletter subscriber
type Subscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	Source         string     `json:"source"` // Which page section captured the signup
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// SubscribeRequest represents a newsletter signup
type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Service handles newsletter subscriptions in memory
type Service struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber // keyed by lower-case email
}

// NewService creates a new newsletter service
func NewService() *Service {
	return &Service{
		subscribers: make(map[string]*Subscriber),
	}
}

// Subscribe registers a new subscriber. Re-subscribing a previously
// unsubscribed address reactivates it; an already-active address is
// rejected.
func (s *Service) Subscribe(req *SubscribeRequest) (*Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(req.Email)
	now := time.Now().UTC()

	if existing, ok := s.subscribers[email]; ok {
		if existing.IsActive {
			return nil, fmt.Errorf("email is already subscribed")
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		copied := *existing
		return &copied, nil
	}

	source := req.Source
	if source == "" {
		source = "unknown"
	}

	sub := &Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		Source:       source,
		IsActive:     true,
		SubscribedAt: now,
	}
	s.subscribers[email] = sub

	copied := *sub
	return &copied, nil
}

// Unsubscribe deactivates a subscriber
func (s *Service) Unsubscribe(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscribers[strings.ToLower(email)]
	if !ok || !sub.IsActive {
		return fmt.Errorf("email is not subscribed")
	}

	now := time.Now().UTC()
	sub.IsActive = false
	sub.UnsubscribedAt = &now
	return nil
}

// Count returns the number of active subscribers
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, sub := range s.subscribers {
		if sub.IsActive {
			count++
		}
	}
	return count
}
