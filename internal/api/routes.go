package api

import (
	"tododesk/internal/auth"
	"tododesk/internal/middleware"
	"tododesk/internal/session"
	"tododesk/internal/todolist"

	"github.com/gin-gonic/gin"
)

// Routes mounts the whole surface on r.
func Routes(r *gin.Engine, authService *auth.Service, sessions *session.Manager, list *todolist.List) {
	// Auth routes
	r.POST("/register", RegisterHandler(authService, sessions))
	r.POST("/login", LoginHandler(authService, sessions))
	r.POST("/logout", LogoutHandler(sessions, list))
	r.GET("/session", SessionHandler(sessions))

	// Todo routes (session required)
	todoGroup := r.Group("/todos")
	todoGroup.Use(middleware.RequireUser(sessions))
	todoGroup.GET("", ListTodosHandler(list))
	todoGroup.POST("", CreateTodoHandler(list))
	todoGroup.PATCH("/:id/toggle", ToggleTodoHandler(list))
	todoGroup.DELETE("/:id", DeleteTodoHandler(list))
}
