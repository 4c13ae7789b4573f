// internal/interfaces/http/middleware/session.go
package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "cart_session"
	// One week, matching the cart TTL in Redis
	sessionCookieMaxAge = 7 * 24 * 60 * 60

	// userSessionPrefix namespaces sessions derived from a user ID. Client
	// supplied values carrying it are discarded so a crafted header or
	// cookie cannot address another user's cart.
	userSessionPrefix = "user:"
)

// UserSessionID returns the cart session key for an authenticated user
func UserSessionID(userID uint) string {
	return fmt.Sprintf("%s%d", userSessionPrefix, userID)
}

// GuestSessionID extracts the client-supplied guest session identity from
// the X-Session-ID header or the cart_session cookie. Values inside the
// authenticated namespace are treated as absent.
func GuestSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			sessionID = cookie
		}
	}
	if sessionID == "" || strings.HasPrefix(sessionID, userSessionPrefix) {
		return "", false
	}
	return sessionID, true
}

// Session resolves the cart session identity for a request.
//
// Authenticated users get a stable session derived from their user ID so the
// cart follows them across devices. Guests are identified by the X-Session-ID
// header or the cart_session cookie; a new UUID is minted and set as a cookie
// when neither is present or the supplied value sits in the user namespace.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := GetUserIDFromContext(c); ok {
			c.Set("session_id", UserSessionID(userID))
			c.Next()
			return
		}

		sessionID, ok := GuestSessionID(c)
		if !ok {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Header(sessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the cart session ID from gin context
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
