package http

import (
	"github.com/gin-gonic/gin"

	"studyplanner/internal/adapter/http/handlers"
	"studyplanner/internal/adapter/http/middleware"
)

const apiBanner = "Student Time Management API"

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	activityHandler *handlers.ActivityHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": apiBanner})
		})
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)

		api.POST("/users/:id/tasks", taskHandler.CreateTask)
		api.GET("/users/:id/tasks", taskHandler.ListUserTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.POST("/users/:id/activities", activityHandler.CreateActivity)
		api.GET("/users/:id/activities", activityHandler.ListUserActivities)
		api.GET("/activities/:id", activityHandler.GetActivity)
		api.PUT("/activities/:id", activityHandler.UpdateActivity)
		api.DELETE("/activities/:id", activityHandler.DeleteActivity)

		api.GET("/users/:id/calendar", dashboardHandler.GetCalendar)
		api.GET("/users/:id/stats", dashboardHandler.GetStats)
	}
}
