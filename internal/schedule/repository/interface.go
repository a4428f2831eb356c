package repository

import (
	"context"

	"schedule-board/internal/model"
)

// AppointmentRepository is the interface for appointment storage. The
// prototype backs it with an in-memory snapshot store; persistence is out
// of scope.
type AppointmentRepository interface {
	Get(ctx context.Context, id string) (model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Insert(ctx context.Context, appt model.Appointment) error
	InsertBatch(ctx context.Context, appts []model.Appointment) error
	// Replace swaps the stored appointment with the same ID.
	Replace(ctx context.Context, appt model.Appointment) error
}
