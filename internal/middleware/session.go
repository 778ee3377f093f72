package middleware

import (
	"net/http" // HTTP status codes

	"tododesk/internal/domain"
	"tododesk/internal/session"

	"github.com/gin-gonic/gin" // Gin web framework
)

const userKey = "user"

// RequireUser resolves the session user once per request and threads it
// through the context as a value; unauthenticated requests are rejected.
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// UserFrom returns the user injected by RequireUser.
func UserFrom(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
