package http

import (
	"schedule-board/internal/model"
	"schedule-board/internal/todo"
)

// --- Request DTOs ---

type addReq struct {
	Text                string `json:"text"                  binding:"required,min=1,max=500"`
	Description         string `json:"description"           binding:"max=1000"`
	CompletionTime      string `json:"completion_time"       binding:"max=32"`
	DueDate             string `json:"due_date"              binding:"omitempty,datetime=2006-01-02"`
	Assignee            string `json:"assignee"              binding:"max=255"`
	SourceAppointmentID string `json:"source_appointment_id" binding:"max=64"`
}

func (r addReq) toInput() todo.AddInput {
	return todo.AddInput{
		Text:                r.Text,
		Description:         r.Description,
		CompletionTime:      r.CompletionTime,
		DueDate:             r.DueDate,
		Assignee:            r.Assignee,
		SourceAppointmentID: r.SourceAppointmentID,
	}
}

type listReq struct {
	Assignee string `form:"assignee"`
	Scope    string `form:"scope"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r listReq) toFilter() todo.Filter {
	assignee := r.Assignee
	if assignee == "" {
		assignee = todo.AssigneeAll
	}
	scope := todo.DateScope(r.Scope)
	if r.Scope == "" {
		scope = todo.ScopeAll
	}
	return todo.Filter{
		Assignee:   assignee,
		Scope:      scope,
		CustomDate: r.Date,
	}
}

type statusReq struct {
	Status string `json:"status" binding:"required,oneof=Pending 'In Progress' 'On Hold' Completed"`
}

type assigneeReq struct {
	Assignee string `json:"assignee" binding:"required,min=1,max=255"`
}

type descriptionReq struct {
	Description string `json:"description" binding:"max=1000"`
}

type completionTimeReq struct {
	CompletionTime string `json:"completion_time" binding:"max=32"`
}

type dueDateReq struct {
	DueDate string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type noteReq struct {
	Note string `json:"note" binding:"max=2000"`
}

type reminderReq struct {
	Tag string `json:"tag" binding:"required,oneof=10m 30m 1h 1d"`
}

type importReq struct {
	SelectedIDs []string                         `json:"selected_ids" binding:"required,min=1"`
	AllAssignee string                           `json:"all_assignee" binding:"max=255"`
	AllDueDate  string                           `json:"all_due_date" binding:"omitempty,datetime=2006-01-02"`
	Config      map[string]todo.ImportItemConfig `json:"config"`
}

func (r importReq) toInput() todo.ImportInput {
	return todo.ImportInput{
		SelectedIDs: r.SelectedIDs,
		AllAssignee: r.AllAssignee,
		AllDueDate:  r.AllDueDate,
		Config:      r.Config,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Task model.ToDoItem `json:"task"`
}

func (h *handler) newTaskResp(item model.ToDoItem) taskResp {
	return taskResp{Task: item}
}

type listResp struct {
	Groups    []todo.TaskGroup `json:"groups"`
	Grouped   bool             `json:"grouped"`
	Total     int              `json:"total"`
	Active    int              `json:"active"`
	Completed int              `json:"completed"`
}

func (h *handler) newListResp(out todo.ViewOutput) listResp {
	return listResp{
		Groups:    out.Groups,
		Grouped:   out.Grouped,
		Total:     out.Total,
		Active:    out.Active,
		Completed: out.Completed,
	}
}

type importResp struct {
	Tasks []model.ToDoItem `json:"tasks"`
	Count int              `json:"count"`
}

func (h *handler) newImportResp(items []model.ToDoItem) importResp {
	return importResp{
		Tasks: items,
		Count: len(items),
	}
}
