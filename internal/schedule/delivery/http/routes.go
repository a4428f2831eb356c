package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// extraction route is rate limited because every call costs a model
// request.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	appts := rg.Group("/appointments")
	{
		appts.POST("", h.Create)
		appts.PUT("/:id", h.Update)
		appts.POST("/:id/resend-link", h.ResendLink)
	}

	board := rg.Group("/schedule")
	{
		board.GET("", h.DayView)
		board.POST("/extract", mw.ExtractRateLimit(), h.Extract)
	}
}
