package usecase

import (
	scheduleRepo "schedule-board/internal/schedule/repository"
	"schedule-board/internal/todo"
	"schedule-board/internal/todo/repository"
	"schedule-board/pkg/clock"
	pkgLog "schedule-board/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.TaskRepository
	apptRepo    scheduleRepo.AppointmentRepository
	clock       clock.Clock
	attachments todo.AttachmentProvider
}

// New creates the todo use case. The appointment repository feeds the
// import flow; the attachment provider issues filenames for AddAttachment.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	apptRepo scheduleRepo.AppointmentRepository,
	clk clock.Clock,
	attachments todo.AttachmentProvider,
) todo.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		apptRepo:    apptRepo,
		clock:       clk,
		attachments: attachments,
	}
}
