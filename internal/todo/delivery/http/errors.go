package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-board/internal/todo"
	"schedule-board/pkg/response"
)

var errTaskNotFound = errors.New("task not found")

// mapError translates domain errors into HTTP responses. Unrecognized
// errors become an opaque 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrEmptyText),
		errors.Is(err, todo.ErrInvalidDateScope),
		errors.Is(err, todo.ErrMissingCustomDate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
