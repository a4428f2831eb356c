package todo

import (
	"context"

	"schedule-board/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
//
// Mutations against an unknown id are silent no-ops; stale UI events
// against removed rows are dropped rather than failed.
type UseCase interface {
	// Add creates a task with default status, due date and assignee.
	Add(ctx context.Context, input AddInput) (model.ToDoItem, error)

	// Get returns a task and whether it exists.
	Get(ctx context.Context, id string) (model.ToDoItem, bool)

	UpdateStatus(ctx context.Context, id string, status model.Status) error
	UpdateAssignee(ctx context.Context, id, assignee string) error
	UpdateDescription(ctx context.Context, id, description string) error
	SetCompletionTime(ctx context.Context, id, completionTime string) error
	SetDueDate(ctx context.Context, id, dueDate string) error
	UpdateNote(ctx context.Context, id, note string) error

	// ToggleReminder adds the tag if absent, removes it if present.
	ToggleReminder(ctx context.Context, id, tag string) error

	// AddAttachment appends a provider-generated filename label.
	AddAttachment(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error

	// View projects the collection through an assignee and date-scope
	// filter into grouped, ordered task groups with aggregate counts.
	View(ctx context.Context, filter Filter) (ViewOutput, error)

	// PlanImport maps selected appointments to task creation requests,
	// skipping appointments already imported.
	PlanImport(ctx context.Context, input ImportInput) ([]AddInput, error)

	// ExecuteImport runs the plan through Add.
	ExecuteImport(ctx context.Context, input ImportInput) ([]model.ToDoItem, error)
}

// AttachmentProvider acquires a file reference for a task attachment. The
// prototype generates placeholder names; a real system resolves an actual
// upload here.
type AttachmentProvider interface {
	NextFilename(count int) string
}
