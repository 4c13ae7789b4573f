// internal/domain/user/service.go
package user

import (
	"fmt"
	"time"

	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/pkg/auth"
)

// Service handles user business logic
type Service struct {
	store           *Store
	config          *config.Config
	jwtManager      *auth.JWTManager
	passwordManager *auth.PasswordManager
}

// NewService creates a new user service and provisions the seed accounts
func NewService(store *Store, cfg *config.Config, seeds []SeedUser) (*Service, error) {
	s := &Service{
		store:           store,
		config:          cfg,
		jwtManager:      auth.NewJWTManager(cfg),
		passwordManager: auth.NewPasswordManager(cfg),
	}

	for _, seed := range seeds {
		hash, err := s.passwordManager.HashPassword(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", seed.Email, err)
		}
		u := &User{
			Email:    seed.Email,
			Password: hash,
			Name:     seed.Name,
			IsAdmin:  seed.IsAdmin,
			IsActive: true,
		}
		if err := store.Create(u); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", seed.Email, err)
		}
	}

	return s, nil
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new user account
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	hash, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		IsActive: true,
	}
	if err := s.store.Create(u); err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

// Login authenticates a user by email and password
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	u, ok := s.store.FindByEmail(req.Email)
	if !ok {
		return nil, fmt.Errorf("invalid email or password")
	}

	if !u.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	if err := s.passwordManager.VerifyPassword(req.Password, u.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	now := time.Now().UTC()
	updated, err := s.store.Update(u.ID, func(stored *User) {
		stored.LastLoginAt = &now
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(updated)
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	u, ok := s.store.FindByID(claims.UserID)
	if !ok || !u.IsActive {
		return nil, fmt.Errorf("user not found or deactivated")
	}

	return s.issueTokens(u)
}

// GetProfile returns the user's profile
func (s *Service) GetProfile(userID uint) (*User, error) {
	u, ok := s.store.FindByID(userID)
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

// UpdateProfile updates mutable profile fields
func (s *Service) UpdateProfile(userID uint, req *UpdateProfileRequest) (*User, error) {
	return s.store.Update(userID, func(u *User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Avatar != nil {
			u.Avatar = *req.Avatar
		}
	})
}

// Count returns the number of registered users
func (s *Service) Count() int {
	return s.store.Count()
}

func (s *Service) issueTokens(u *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
