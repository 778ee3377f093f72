// Package session is the one boundary adapter for "who is logged in".
// The session lives in a signed token cookie; everything past this package
// sees the current user only as an explicit *domain.User value.
package session

import (
	"time"

	"tododesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5" // JWT library
)

const (
	cookieName = "tododesk_session"
	tokenTTL   = 24 * time.Hour
)

// Claims carried by the session token.
type Claims struct {
	UserID               uint   `json:"user_id"`
	Username             string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and parses session tokens.
type Manager struct {
	secret []byte
}

// NewManager returns a Manager signing with secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// SetCurrentUser establishes the session for user.
func (m *Manager) SetCurrentUser(c *gin.Context, user *domain.User) error {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return &domain.SessionError{Err: err}
	}
	c.SetCookie(cookieName, signed, int(tokenTTL/time.Second), "/", "", false, true)
	return nil
}

// CurrentUser returns the session user, or nil when no valid session exists.
// A missing, malformed or expired cookie is not an error: it is the
// "no session" state.
func (m *Manager) CurrentUser(c *gin.Context) *domain.User {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil
	}
	return &domain.User{ID: claims.UserID, Username: claims.Username}
}

// ClearCurrentUser ends the session. Best effort: clearing an absent session
// lands in the same state.
func (m *Manager) ClearCurrentUser(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
