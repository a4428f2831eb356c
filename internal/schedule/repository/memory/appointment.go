package memory

import (
	"context"
	"sync"

	"schedule-board/internal/model"
	"schedule-board/internal/schedule"
	pkgLog "schedule-board/pkg/log"
)

// Repository is an in-memory appointment store. Every write builds a new
// slice and swaps it in whole, so readers holding an earlier snapshot never
// observe a partial update. Insertion order is preserved; ordering for
// display is the usecase's concern.
type Repository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	items []model.Appointment
}

// New creates an empty in-memory appointment repository.
func New(l pkgLog.Logger) *Repository {
	return &Repository{l: l}
}

// Seed replaces the whole collection. Used at startup to load mock data.
func (r *Repository) Seed(appts []model.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Appointment(nil), appts...)
}

func (r *Repository) Get(ctx context.Context, id string) (model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Appointment{}, schedule.ErrAppointmentNotFound
}

func (r *Repository) List(ctx context.Context) ([]model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *Repository) Insert(ctx context.Context, appt model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Appointment, 0, len(r.items)+1)
	next = append(next, r.items...)
	next = append(next, appt)
	r.items = next
	return nil
}

func (r *Repository) InsertBatch(ctx context.Context, appts []model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Appointment, 0, len(r.items)+len(appts))
	next = append(next, r.items...)
	next = append(next, appts...)
	r.items = next
	return nil
}

func (r *Repository) Replace(ctx context.Context, appt model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.items {
		if a.ID == appt.ID {
			next := make([]model.Appointment, len(r.items))
			copy(next, r.items)
			next[i] = appt
			r.items = next
			return nil
		}
	}
	return schedule.ErrAppointmentNotFound
}
