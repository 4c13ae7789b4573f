// internal/domain/user/store.go
package user

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store is a mutex-guarded in-memory user table. It stands in for a real
// user database, which this storefront deliberately does not have; state is
// lost on restart apart from the seed accounts.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	byID    map[uint]*User
	nextID  uint
}

// NewStore creates an empty user store
func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]*User),
		byID:    make(map[uint]*User),
		nextID:  1,
	}
}

// Create inserts a new user, assigning an ID. Email match is
// case-insensitive; a duplicate email is rejected.
func (s *Store) Create(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := s.byEmail[email]; exists {
		return fmt.Errorf("user with email %s already exists", u.Email)
	}

	u.ID = s.nextID
	s.nextID++
	u.Email = email

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	s.byEmail[email] = u
	s.byID[u.ID] = u
	return nil
}

// FindByEmail looks up a user by case-insensitive email
func (s *Store) FindByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}

// FindByID looks up a user by ID
func (s *Store) FindByID(id uint) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}

// Update applies fn to the stored user under the write lock
func (s *Store) Update(id uint, fn func(*User)) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}

	fn(u)
	u.UpdatedAt = time.Now().UTC()

	copied := *u
	return &copied, nil
}

// Count returns the number of registered users
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
