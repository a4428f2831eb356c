package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("", h.Add)
		todos.GET("", h.List)
		todos.POST("/import", h.Import)
		todos.GET("/:id", h.Detail)
		todos.DELETE("/:id", h.Delete)
		todos.PATCH("/:id/status", h.UpdateStatus)
		todos.PATCH("/:id/assignee", h.UpdateAssignee)
		todos.PATCH("/:id/description", h.UpdateDescription)
		todos.PATCH("/:id/completion-time", h.UpdateCompletionTime)
		todos.PATCH("/:id/due-date", h.UpdateDueDate)
		todos.PATCH("/:id/note", h.UpdateNote)
		todos.POST("/:id/reminders", h.ToggleReminder)
		todos.POST("/:id/attachments", h.AddAttachment)
	}
}
