package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"tododesk/internal/domain"
	"tododesk/internal/middleware"
	"tododesk/internal/todolist"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for creating a todo. Text is intentionally not required by
// the binding: a blank text is a no-op, not a client error.
type createTodoRequest struct {
	Text string `json:"text"`
}

func sessionUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return user, true
}

func todoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return 0, false
	}
	return uint(id), true
}

// ListTodosHandler returns the current user's todos, newest first.
func ListTodosHandler(list *todolist.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			return
		}
		items, err := list.ItemsFor(user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"todos": items})
	}
}

// CreateTodoHandler adds a todo. Blank text is ignored and answered with a
// nil todo rather than an error.
func CreateTodoHandler(list *todolist.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			return
		}
		var req createTodoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		todo, err := list.Add(user, req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		if todo == nil {
			c.JSON(http.StatusOK, gin.H{"todo": nil})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"todo_id": todo.ID,
		}).Info("Todo added")
		c.JSON(http.StatusCreated, gin.H{"todo": todo})
	}
}

// ToggleTodoHandler flips the completed flag of one of the user's todos.
func ToggleTodoHandler(list *todolist.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			return
		}
		id, ok := todoIDParam(c)
		if !ok {
			return
		}
		if err := list.Toggle(user, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo toggled"})
	}
}

// DeleteTodoHandler removes one of the user's todos.
func DeleteTodoHandler(list *todolist.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			return
		}
		id, ok := todoIDParam(c)
		if !ok {
			return
		}
		if err := list.Remove(user, id); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"todo_id": id,
		}).Info("Todo removed")
		c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
	}
}
