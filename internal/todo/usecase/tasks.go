package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"schedule-board/internal/model"
	"schedule-board/internal/todo"
	"schedule-board/pkg/clock"
)

func (uc implUseCase) Add(ctx context.Context, input todo.AddInput) (model.ToDoItem, error) {
	if strings.TrimSpace(input.Text) == "" {
		uc.l.Warnf(ctx, "todo.usecase.Add: %v", todo.ErrEmptyText)
		return model.ToDoItem{}, todo.ErrEmptyText
	}

	assignee := input.Assignee
	if assignee == "" {
		assignee = model.DefaultAssignee
	}

	dueDate := input.DueDate
	if dueDate == "" {
		dueDate = clock.Today(uc.clock)
	}

	item := model.ToDoItem{
		ID:                  uuid.NewString(),
		Text:                input.Text,
		Description:         input.Description,
		Status:              model.StatusPending,
		Completed:           false,
		Assignee:            assignee,
		CompletionTime:      input.CompletionTime,
		DueDate:             dueDate,
		Reminders:           []string{},
		SourceAppointmentID: input.SourceAppointmentID,
		Attachments:         []string{},
	}

	uc.repo.Insert(ctx, item)
	uc.l.Debugf(ctx, "todo.usecase.Add: created task %s", item.ID)
	return item, nil
}

func (uc implUseCase) Get(ctx context.Context, id string) (model.ToDoItem, bool) {
	return uc.repo.Get(ctx, id)
}

// mutate applies fn to the stored item. An unknown id is a silent no-op:
// the board drops stale mutations rather than failing them.
func (uc implUseCase) mutate(ctx context.Context, op, id string, fn func(model.ToDoItem) model.ToDoItem) error {
	if !uc.repo.Mutate(ctx, id, fn) {
		uc.l.Debugf(ctx, "todo.usecase.%s: unknown task %s, ignoring", op, id)
	}
	return nil
}

func (uc implUseCase) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return uc.mutate(ctx, "UpdateStatus", id, func(item model.ToDoItem) model.ToDoItem {
		item.Status = status
		item.Completed = status == model.StatusCompleted
		return item
	})
}

func (uc implUseCase) UpdateAssignee(ctx context.Context, id, assignee string) error {
	return uc.mutate(ctx, "UpdateAssignee", id, func(item model.ToDoItem) model.ToDoItem {
		item.Assignee = assignee
		return item
	})
}

func (uc implUseCase) UpdateDescription(ctx context.Context, id, description string) error {
	return uc.mutate(ctx, "UpdateDescription", id, func(item model.ToDoItem) model.ToDoItem {
		item.Description = description
		return item
	})
}

func (uc implUseCase) SetCompletionTime(ctx context.Context, id, completionTime string) error {
	return uc.mutate(ctx, "SetCompletionTime", id, func(item model.ToDoItem) model.ToDoItem {
		item.CompletionTime = completionTime
		return item
	})
}

func (uc implUseCase) SetDueDate(ctx context.Context, id, dueDate string) error {
	return uc.mutate(ctx, "SetDueDate", id, func(item model.ToDoItem) model.ToDoItem {
		item.DueDate = dueDate
		return item
	})
}

func (uc implUseCase) UpdateNote(ctx context.Context, id, note string) error {
	return uc.mutate(ctx, "UpdateNote", id, func(item model.ToDoItem) model.ToDoItem {
		item.Notes = note
		return item
	})
}

func (uc implUseCase) ToggleReminder(ctx context.Context, id, tag string) error {
	return uc.mutate(ctx, "ToggleReminder", id, func(item model.ToDoItem) model.ToDoItem {
		next := make([]string, 0, len(item.Reminders)+1)
		found := false
		for _, r := range item.Reminders {
			if r == tag {
				found = true
				continue
			}
			next = append(next, r)
		}
		if !found {
			next = append(next, tag)
		}
		item.Reminders = next
		return item
	})
}

func (uc implUseCase) AddAttachment(ctx context.Context, id string) error {
	return uc.mutate(ctx, "AddAttachment", id, func(item model.ToDoItem) model.ToDoItem {
		name := uc.attachments.NextFilename(len(item.Attachments))
		item.Attachments = append(append([]string{}, item.Attachments...), name)
		return item
	})
}

func (uc implUseCase) Delete(ctx context.Context, id string) error {
	uc.repo.Delete(ctx, id)
	return nil
}
