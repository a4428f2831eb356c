package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-board/internal/schedule"
	"schedule-board/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unrecognized
// errors become an opaque 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrAppointmentNotFound):
		response.NotFound(c, err)
	case errors.Is(err, schedule.ErrEmptyClientName),
		errors.Is(err, schedule.ErrEmptyOwner),
		errors.Is(err, schedule.ErrEmptyTime),
		errors.Is(err, schedule.ErrNotZoomMeeting),
		errors.Is(err, schedule.ErrEmptyImage),
		errors.Is(err, schedule.ErrExtractionDisabled):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
