package usecase_test

import (
	"context"
	"time"

	"schedule-board/internal/model"
	scheduleMemory "schedule-board/internal/schedule/repository/memory"
	"schedule-board/internal/todo"
	todoMemory "schedule-board/internal/todo/repository/memory"
	"schedule-board/internal/todo/usecase"
	"schedule-board/pkg/clock"
)

// Fixed "today" shared by the tests: a Friday.
var testToday = time.Date(2025, 12, 5, 9, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestUseCase(appts ...model.Appointment) todo.UseCase {
	l := &nopLogger{}
	apptRepo := scheduleMemory.New(l)
	apptRepo.Seed(appts)
	return usecase.New(l, todoMemory.New(l), apptRepo, clock.Fixed(testToday), todo.PlaceholderPDF{})
}

func date(daysFromToday int) string {
	return testToday.AddDate(0, 0, daysFromToday).Format(clock.DateFormat)
}
