// internal/domain/user/service_test.go
package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/promptshop-backend/internal/config"
)

func newTestUserService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-that-is-long-enough-for-validation"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour
	cfg.Security.BcryptCost = 4 // keep the tests fast

	svc, err := NewService(NewStore(), cfg, DefaultSeedUsers())
	require.NoError(t, err)
	return svc
}

func TestSeedUsersCanLogIn(t *testing.T) {
	svc := newTestUserService(t)

	resp, err := svc.Login(&LoginRequest{Email: "demo@example.com", Password: "demo1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.False(t, resp.User.IsAdmin)
	assert.NotNil(t, resp.User.LastLoginAt)

	admin, err := svc.Login(&LoginRequest{Email: "admin@promptshop.com", Password: "admin1234"})
	require.NoError(t, err)
	assert.True(t, admin.User.IsAdmin)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Login(&LoginRequest{Email: "Demo@Example.com", Password: "demo1234"})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Login(&LoginRequest{Email: "demo@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())

	// Unknown email yields the same message, no account enumeration
	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "demo1234"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestUserService(t)

	resp, err := svc.Register(&RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "New User", resp.User.Name)
	assert.NotEqual(t, "password123", resp.User.Password, "password must be stored hashed")

	_, err = svc.Login(&LoginRequest{Email: "new@example.com", Password: "password123"})
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(&RegisterRequest{
		Name:     "Copycat",
		Email:    "demo@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(&RegisterRequest{
		Name:     "Shorty",
		Email:    "short@example.com",
		Password: "abc",
	})
	assert.Error(t, err)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc := newTestUserService(t)

	login, err := svc.Login(&LoginRequest{Email: "demo@example.com", Password: "demo1234"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	// An access token is not a valid refresh token
	_, err = svc.RefreshToken(login.AccessToken)
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestUserService(t)

	login, err := svc.Login(&LoginRequest{Email: "demo@example.com", Password: "demo1234"})
	require.NoError(t, err)

	name := "Renamed"
	updated, err := svc.UpdateProfile(login.User.ID, &UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	// Avatar untouched when omitted
	assert.Equal(t, login.User.Avatar, updated.Avatar)
}

func TestCountIncludesSeeds(t *testing.T) {
	svc := newTestUserService(t)

	assert.Equal(t, 2, svc.Count())
}
