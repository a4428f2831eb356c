package usecase

import (
	"context"

	"schedule-board/internal/notify"
	"schedule-board/internal/schedule/repository"
	"schedule-board/pkg/clock"
	"schedule-board/pkg/gcalendar"
	"schedule-board/pkg/gemini"
	pkgLog "schedule-board/pkg/log"
)

// Extractor is the slice of the Gemini client the schedule domain needs.
type Extractor interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.AppointmentRepository
	notifier   notify.MeetingLinkNotifier
	llm        Extractor
	calendar   *gcalendar.Client
	clock      clock.Clock
	timezone   string
	calendarID string
}

// New creates a new schedule UseCase instance. calendar may be nil when
// Google Calendar push is not configured; llm may be nil when image
// extraction is not configured. An empty calendarID targets the account's
// primary calendar.
func New(
	l pkgLog.Logger,
	repo repository.AppointmentRepository,
	notifier notify.MeetingLinkNotifier,
	llm Extractor,
	calendar *gcalendar.Client,
	ck clock.Clock,
	timezone string,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		notifier:   notifier,
		llm:        llm,
		calendar:   calendar,
		clock:      ck,
		timezone:   timezone,
		calendarID: calendarID,
	}
}
