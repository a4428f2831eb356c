package httpserver

import (
	"context"
	"fmt"

	"schedule-board/internal/middleware"
)

// Run maps all handlers and blocks serving HTTP until the listener fails.
func (srv *HTTPServer) Run(mw middleware.Middleware) error {
	if err := srv.mapHandlers(mw); err != nil {
		return fmt.Errorf("httpserver.Run: %w", err)
	}

	srv.l.Infof(context.Background(), "listening on :%d", srv.port)
	if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
		return fmt.Errorf("httpserver.Run: %w", err)
	}
	return nil
}
