package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/todo"
	"schedule-board/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	UpdateStatus(c *gin.Context)
	UpdateAssignee(c *gin.Context)
	UpdateDescription(c *gin.Context)
	UpdateCompletionTime(c *gin.Context)
	UpdateDueDate(c *gin.Context)
	UpdateNote(c *gin.Context)
	ToggleReminder(c *gin.Context)
	AddAttachment(c *gin.Context)
	Delete(c *gin.Context)
	Import(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
