package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/schedule"
	"schedule-board/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	DayView(c *gin.Context)
	ResendLink(c *gin.Context)
	Extract(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
