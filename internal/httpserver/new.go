package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-board/internal/model"
	"schedule-board/internal/notify"
	scheduleUC "schedule-board/internal/schedule/usecase"
	"schedule-board/pkg/clock"
	"schedule-board/pkg/gcalendar"
	"schedule-board/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Collaborators shared across domains
	clock    clock.Clock
	notifier notify.MeetingLinkNotifier
	// llm may be nil when image extraction is not configured.
	llm scheduleUC.Extractor
	// calendar may be nil when Google Calendar push is not configured.
	calendar *gcalendar.Client
	timezone string
	// calendarID targets a specific calendar; empty means the primary one.
	calendarID string

	// Seed data loaded into the appointment store at startup.
	seedAppointments []model.Appointment
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Clock      clock.Clock
	Notifier   notify.MeetingLinkNotifier
	LLM        scheduleUC.Extractor
	Calendar   *gcalendar.Client
	Timezone   string
	CalendarID string

	SeedAppointments []model.Appointment
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		clock:            cfg.Clock,
		notifier:         cfg.Notifier,
		llm:              cfg.LLM,
		calendar:         cfg.Calendar,
		timezone:         cfg.Timezone,
		calendarID:       cfg.CalendarID,
		seedAppointments: cfg.SeedAppointments,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.clock == nil {
		return errors.New("clock is required")
	}
	if srv.notifier == nil {
		return errors.New("notifier is required")
	}
	return nil
}
