package model

// Status is the authoritative state of a to-do item.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusOnHold     Status = "On Hold"
	StatusCompleted  Status = "Completed"
)

// Reminder offset tags a user can toggle on an item.
const (
	Reminder10Min = "10m"
	Reminder30Min = "30m"
	Reminder1Hour = "1h"
	Reminder1Day  = "1d"
)

// DefaultAssignee is used when an item is created without an explicit owner.
const DefaultAssignee = "Me"

// ToDoItem is a unit of work, optionally imported from an Appointment.
// Completed is derived from Status and kept in sync on every status change.
type ToDoItem struct {
	ID                  string   `json:"id"`
	Text                string   `json:"text"`
	Description         string   `json:"description,omitempty"`
	Status              Status   `json:"status"`
	Completed           bool     `json:"completed"`
	Assignee            string   `json:"assignee"`
	CompletionTime      string   `json:"completion_time,omitempty"` // display label, not canonical minutes
	DueDate             string   `json:"due_date,omitempty"`        // calendar date string YYYY-MM-DD
	Reminders           []string `json:"reminders"`
	SourceAppointmentID string   `json:"source_appointment_id,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	Attachments         []string `json:"attachments"`
}
