package web

import (
	"github.com/gin-gonic/gin"

	"studyplanner/internal/core/ports"
)

func RegisterRoutes(r *gin.Engine, h *Handler, authService ports.AuthService) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/signup", h.ShowSignup)
	r.POST("/signup", h.Signup)
	r.GET("/logout", h.Logout)

	authed := r.Group("/")
	authed.Use(RequireUser(authService))
	{
		authed.GET("/", h.Dashboard)
		authed.GET("/calendar", h.CalendarPage)
		authed.GET("/tasks/new", h.ShowNewTask)
		authed.POST("/tasks/new", h.CreateTask)
		authed.POST("/tasks/:id/complete", h.CompleteTask)
		authed.GET("/activities/new", h.ShowNewActivity)
		authed.POST("/activities/new", h.CreateActivity)
	}
}
