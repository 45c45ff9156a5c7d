package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/handlers"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/middleware"
)

// Register wires every route. When a JWT secret is configured the entity
// routes require a Bearer token and the auth endpoints are exposed; without
// one the API runs open, like the original deployment did.
func Register(r *gin.Engine, h *handlers.Handler, auth *handlers.AuthHandler, secret []byte) {
	// Match on the raw path so a percent-encoded slash in :fileName stays one
	// segment and reaches the containment check instead of 404ing at the
	// router. Params are still delivered decoded.
	r.UseRawPath = true

	r.Static("/uploads", h.UploadDir)

	api := r.Group("/api")
	api.GET("/health", h.Health)

	protected := api.Group("")
	if len(secret) > 0 {
		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)
		protected.Use(middleware.Auth(secret))
	}

	contacts := protected.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.GET("/:id", h.GetContact)
		contacts.POST("", h.CreateContact)
		contacts.PATCH("/:id", h.UpdateContact)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.POST("", h.CreateTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	projects := protected.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.POST("", h.CreateProject)
		projects.PATCH("/:id", h.UpdateProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}

	lessons := protected.Group("/lessons")
	{
		lessons.GET("", h.ListLessons)
		lessons.GET("/:id", h.GetLesson)
		lessons.POST("", h.CreateLesson)
		lessons.PATCH("/:id", h.UpdateLesson)
		lessons.PUT("/:id", h.UpdateLesson)
		lessons.DELETE("/:id", h.DeleteLesson)
	}

	tests := protected.Group("/tests")
	{
		tests.GET("", h.ListTests)
		tests.GET("/:id", h.GetTest)
		tests.POST("", h.CreateTest)
		tests.PATCH("/:id", h.UpdateTest)
		tests.PUT("/:id", h.UpdateTest)
		tests.DELETE("/:id", h.DeleteTest)
	}

	events := protected.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
		events.POST("", h.CreateEvent)
		events.PATCH("/:id", h.UpdateEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/:id", h.GetNotification)
		notifications.POST("", h.CreateNotification)
		notifications.PATCH("/:id", h.UpdateNotification)
		notifications.PUT("/:id", h.UpdateNotification)
		notifications.PATCH("/:id/read", h.MarkNotificationRead)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}

	categories := protected.Group("/task-categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	school := protected.Group("/school")
	{
		school.GET("/lessons/:lessonId/files", h.ListLessonFiles)
		school.POST("/lessons/:lessonId/files", h.UploadLessonFiles)
		school.DELETE("/lessons/:lessonId/files/:fileName", h.DeleteLessonFile)

		school.GET("/tests/:testId/files", h.ListTestFiles)
		school.POST("/tests/:testId/files", h.UploadTestFiles)
		school.DELETE("/tests/:testId/files/:fileName", h.DeleteTestFile)
	}
}
