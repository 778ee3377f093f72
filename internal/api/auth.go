package api

import (
	"net/http" // HTTP status codes

	"tododesk/internal/auth"
	"tododesk/internal/session"
	"tododesk/internal/todolist"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for register and login
type credentialsRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates an account and establishes the session for it.
func RegisterHandler(authService *auth.Service, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := authService.Register(req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := sessions.SetCurrentUser(c, user); err != nil {
			logrus.WithField("user_id", user.ID).Errorf("failed to establish session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// LoginHandler authenticates a user and establishes the session.
func LoginHandler(authService *auth.Service, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := authService.Login(req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := sessions.SetCurrentUser(c, user); err != nil {
			logrus.WithField("user_id", user.ID).Errorf("failed to establish session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// LogoutHandler ends the session and clears the view-state. Always succeeds
// from the caller's perspective.
func LogoutHandler(sessions *session.Manager, list *todolist.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.ClearCurrentUser(c)
		list.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// SessionHandler reports the current session user, if any. No session is a
// normal answer, not an error.
func SessionHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
