// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// User represents a registered storefront user
type User struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // bcrypt hash, never serialized
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar,omitempty"`
	IsAdmin     bool       `json:"is_admin"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetDisplayName returns display name (name or email)
func (u *User) GetDisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}

// SeedUser is a demo account provisioned at startup
type SeedUser struct {
	Email    string
	Password string
	Name     string
	IsAdmin  bool
}

// DefaultSeedUsers returns the demo accounts the storefront ships with.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Email: "demo@example.com", Password: "demo1234", Name: "Demo User"},
		{Email: "admin@promptshop.com", Password: "admin1234", Name: "Admin User", IsAdmin: true},
	}
}
