package memory

import (
	"context"
	"sync"

	"schedule-board/internal/model"
	pkgLog "schedule-board/pkg/log"
)

// Repository is an in-memory task store keyed by id. Writes copy the
// mapping and swap it in whole (copy-on-write), so a snapshot handed to a
// reader is never mutated underneath it. Newest ids sit at the front of
// the order slice; final display ordering is the view engine's concern.
type Repository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	items map[string]model.ToDoItem
	order []string // most-recent-first
}

// New creates an empty in-memory task repository.
func New(l pkgLog.Logger) *Repository {
	return &Repository{
		l:     l,
		items: make(map[string]model.ToDoItem),
	}
}

func (r *Repository) Get(ctx context.Context, id string) (model.ToDoItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok
}

func (r *Repository) List(ctx context.Context) []model.ToDoItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ToDoItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *Repository) Insert(ctx context.Context, item model.ToDoItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.copyItems()
	next[item.ID] = item
	r.items = next

	order := make([]string, 0, len(r.order)+1)
	order = append(order, item.ID)
	order = append(order, r.order...)
	r.order = order
}

func (r *Repository) Mutate(ctx context.Context, id string, fn func(model.ToDoItem) model.ToDoItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return false
	}

	next := r.copyItems()
	next[id] = fn(item)
	r.items = next
	return true
}

func (r *Repository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return
	}

	next := r.copyItems()
	delete(next, id)
	r.items = next

	order := make([]string, 0, len(r.order)-1)
	for _, oid := range r.order {
		if oid != id {
			order = append(order, oid)
		}
	}
	r.order = order
}

// copyItems clones the mapping; callers hold the write lock.
func (r *Repository) copyItems() map[string]model.ToDoItem {
	next := make(map[string]model.ToDoItem, len(r.items)+1)
	for k, v := range r.items {
		next[k] = v
	}
	return next
}
