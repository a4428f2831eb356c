package todo

import "schedule-board/internal/model"

// AssigneeAll disables assignee filtering.
const AssigneeAll = "All"

// DateScope selects the date window of the task view.
type DateScope string

const (
	ScopeToday     DateScope = "today"
	ScopeTomorrow  DateScope = "tomorrow"
	ScopeNext7Days DateScope = "next7days"
	ScopeAll       DateScope = "all"
	ScopeCustom    DateScope = "custom"
)

// NoDateLabel heads the terminal bucket for tasks without a due date.
const NoDateLabel = "No Due Date"

// AddInput carries the fields for creating a task. Omitted DueDate
// defaults to today, omitted Assignee to model.DefaultAssignee.
type AddInput struct {
	Text                string `json:"text"`
	Description         string `json:"description"`
	CompletionTime      string `json:"completion_time"`
	DueDate             string `json:"due_date"`
	Assignee            string `json:"assignee"`
	SourceAppointmentID string `json:"source_appointment_id"`
}

// Filter selects the slice of the collection to show.
type Filter struct {
	// Assignee is an exact match, or AssigneeAll for everyone.
	Assignee string
	Scope    DateScope
	// CustomDate is required when Scope is ScopeCustom.
	CustomDate string
}

// TaskView is a task enriched with its overdue flag.
type TaskView struct {
	model.ToDoItem
	Overdue bool `json:"overdue"`
}

// TaskGroup is one due-date bucket of the view. Date is empty for the
// no-date bucket.
type TaskGroup struct {
	Date  string     `json:"date"`
	Label string     `json:"label"`
	Tasks []TaskView `json:"tasks"`
}

// ViewOutput is the filtered, grouped, ordered projection of the
// collection. Grouped is false for single-day scopes, which produce one
// implicit group with no header label.
type ViewOutput struct {
	Groups    []TaskGroup `json:"groups"`
	Grouped   bool        `json:"grouped"`
	Total     int         `json:"total"`
	Active    int         `json:"active"`
	Completed int         `json:"completed"`
}

// ImportItemConfig is the per-appointment owner/date choice made in the
// configuration phase of an import.
type ImportItemConfig struct {
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"`
}

// ImportInput carries the selection and configuration of an import run.
// Every selected id starts from the batch defaults, AllAssignee and
// AllDueDate overwrite those in bulk, and per-item Config entries win
// last. Items missing from Config keep the batch values.
type ImportInput struct {
	SelectedIDs []string                    `json:"selected_ids"`
	AllAssignee string                      `json:"all_assignee"`
	AllDueDate  string                      `json:"all_due_date"`
	Config      map[string]ImportItemConfig `json:"config"`
}

// NewImportConfig seeds every selected id with the batch defaults, the
// baseline the configuration phase then overrides per item or in batch.
func NewImportConfig(selectedIDs []string, today string) map[string]ImportItemConfig {
	cfg := make(map[string]ImportItemConfig, len(selectedIDs))
	for _, id := range selectedIDs {
		cfg[id] = ImportItemConfig{Assignee: model.DefaultAssignee, DueDate: today}
	}
	return cfg
}

// SetAllAssignees overwrites the assignee of every entry, leaving due
// dates untouched.
func SetAllAssignees(cfg map[string]ImportItemConfig, assignee string) {
	for id, c := range cfg {
		c.Assignee = assignee
		cfg[id] = c
	}
}

// SetAllDueDates overwrites the due date of every entry, leaving
// assignees untouched.
func SetAllDueDates(cfg map[string]ImportItemConfig, dueDate string) {
	for id, c := range cfg {
		c.DueDate = dueDate
		cfg[id] = c
	}
}
