package repository

import (
	"context"

	"schedule-board/internal/model"
)

// TaskRepository is the interface for task storage. Every write publishes
// a whole new snapshot; readers never see a partial update.
type TaskRepository interface {
	Get(ctx context.Context, id string) (model.ToDoItem, bool)
	// List returns the collection most-recent-first.
	List(ctx context.Context) []model.ToDoItem
	Insert(ctx context.Context, item model.ToDoItem)
	// Mutate applies fn to the stored item and publishes the result.
	// Returns false (and does nothing) when the id is absent.
	Mutate(ctx context.Context, id string, fn func(model.ToDoItem) model.ToDoItem) bool
	// Delete removes the entry; an absent id is a no-op.
	Delete(ctx context.Context, id string)
}
