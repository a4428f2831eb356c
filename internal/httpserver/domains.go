package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"schedule-board/internal/crm"
	crmHTTP "schedule-board/internal/crm/delivery/http"
	"schedule-board/internal/middleware"
	scheduleHTTP "schedule-board/internal/schedule/delivery/http"
	scheduleMemory "schedule-board/internal/schedule/repository/memory"
	scheduleUC "schedule-board/internal/schedule/usecase"
	"schedule-board/internal/todo"
	todoHTTP "schedule-board/internal/todo/delivery/http"
	todoMemory "schedule-board/internal/todo/repository/memory"
	todoUC "schedule-board/internal/todo/usecase"
)

// registerDomainRoutes wires every domain: repository, usecase, HTTP
// handler, routes. The appointment repository is shared between the
// schedule domain and the todo import flow.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw middleware.Middleware) error {
	ctx := context.Background()

	// Schedule domain
	apptRepo := scheduleMemory.New(srv.l)
	if len(srv.seedAppointments) > 0 {
		apptRepo.Seed(srv.seedAppointments)
		srv.l.Infof(ctx, "seeded %d appointments", len(srv.seedAppointments))
	}

	schedUC := scheduleUC.New(srv.l, apptRepo, srv.notifier, srv.llm, srv.calendar, srv.clock, srv.timezone, srv.calendarID)
	scheduleHTTP.RegisterRoutes(api, scheduleHTTP.New(srv.l, schedUC), mw)
	srv.l.Infof(ctx, "Schedule domain registered")

	// Todo domain
	taskRepo := todoMemory.New(srv.l)
	tUC := todoUC.New(srv.l, taskRepo, apptRepo, srv.clock, todo.PlaceholderPDF{})
	todoHTTP.RegisterRoutes(api, todoHTTP.New(srv.l, tUC), mw)
	srv.l.Infof(ctx, "Todo domain registered")

	// CRM lookup
	crmHTTP.RegisterRoutes(api, crmHTTP.New(srv.l, crm.NewRedtailMock(srv.l)))
	srv.l.Infof(ctx, "CRM lookup registered")

	return nil
}
