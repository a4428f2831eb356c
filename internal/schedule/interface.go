package schedule

import (
	"context"

	"schedule-board/internal/model"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Create validates and stores a new appointment from the intake form.
	Create(ctx context.Context, input CreateInput) (model.Appointment, error)

	// Update replaces an existing appointment on explicit edit resubmission.
	// Editing is the only mutation path; appointments are never deleted.
	Update(ctx context.Context, id string, input CreateInput) (model.Appointment, error)

	// DayView returns the day's appointments grouped by owner, each group
	// ordered ascending by parsed time of day.
	DayView(ctx context.Context) (DayViewOutput, error)

	// ResendLink triggers a best-effort re-send of a Zoom invitation link.
	ResendLink(ctx context.Context, id string) error

	// ExtractFromImage sends a schedule image to the extraction service and
	// admits the returned appointments into the collection.
	ExtractFromImage(ctx context.Context, input ExtractInput) ([]model.Appointment, error)
}
