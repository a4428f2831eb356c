package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/model"
	"schedule-board/pkg/response"
)

// Add godoc
// @Summary     Create a task
// @Description Creates a task. Omitted assignee and due date fall back to defaults.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(item))
}

// List godoc
// @Summary     List tasks
// @Description Returns the filtered, grouped task view with aggregate counts.
// @Tags        Todos
// @Produce     json
// @Param       assignee query string false "Assignee filter (default: All)"
// @Param       scope    query string false "Date scope: today, tomorrow, next7days, all, custom (default: all)"
// @Param       date     query string false "Date for the custom scope (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.View(ctx, req.toFilter())
	if err != nil {
		h.l.Errorf(ctx, "uc.View: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by its ID.
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	item, ok := h.uc.Get(ctx, c.Param("id"))
	if !ok {
		response.NotFound(c, errTaskNotFound)
		return
	}

	response.OK(c, h.newTaskResp(item))
}

// UpdateStatus godoc
// @Summary     Update task status
// @Description Sets the status; the completed flag follows it.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateStatus(ctx, c.Param("id"), model.Status(req.Status)); err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateAssignee godoc
// @Summary     Reassign a task
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body assigneeReq true "New assignee"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/assignee [PATCH]
func (h *handler) UpdateAssignee(c *gin.Context) {
	ctx := c.Request.Context()

	var req assigneeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateAssignee(ctx, c.Param("id"), req.Assignee); err != nil {
		h.l.Errorf(ctx, "uc.UpdateAssignee: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateDescription godoc
// @Summary     Update task description
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Task ID"
// @Param       body body descriptionReq true "New description"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/description [PATCH]
func (h *handler) UpdateDescription(c *gin.Context) {
	ctx := c.Request.Context()

	var req descriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateDescription(ctx, c.Param("id"), req.Description); err != nil {
		h.l.Errorf(ctx, "uc.UpdateDescription: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateCompletionTime godoc
// @Summary     Update task completion time label
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Task ID"
// @Param       body body completionTimeReq true "New completion time"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/completion-time [PATCH]
func (h *handler) UpdateCompletionTime(c *gin.Context) {
	ctx := c.Request.Context()

	var req completionTimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetCompletionTime(ctx, c.Param("id"), req.CompletionTime); err != nil {
		h.l.Errorf(ctx, "uc.SetCompletionTime: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateDueDate godoc
// @Summary     Update task due date
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Task ID"
// @Param       body body dueDateReq true "New due date (YYYY-MM-DD, empty clears it)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/due-date [PATCH]
func (h *handler) UpdateDueDate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dueDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetDueDate(ctx, c.Param("id"), req.DueDate); err != nil {
		h.l.Errorf(ctx, "uc.SetDueDate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateNote godoc
// @Summary     Update task notes
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body noteReq true "New note"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/note [PATCH]
func (h *handler) UpdateNote(c *gin.Context) {
	ctx := c.Request.Context()

	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateNote(ctx, c.Param("id"), req.Note); err != nil {
		h.l.Errorf(ctx, "uc.UpdateNote: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// ToggleReminder godoc
// @Summary     Toggle a reminder tag
// @Description Adds the tag if absent, removes it if present.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body reminderReq true "Reminder tag (10m, 30m, 1h, 1d)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/{id}/reminders [POST]
func (h *handler) ToggleReminder(c *gin.Context) {
	ctx := c.Request.Context()

	var req reminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ToggleReminder(ctx, c.Param("id"), req.Tag); err != nil {
		h.l.Errorf(ctx, "uc.ToggleReminder: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddAttachment godoc
// @Summary     Attach a document to a task
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/todos/{id}/attachments [POST]
func (h *handler) AddAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.AddAttachment(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.AddAttachment: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import godoc
// @Summary     Import appointments as tasks
// @Description Creates tasks from selected appointments, skipping ones already imported.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Selection, bulk overrides and per-item configuration"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	items, err := h.uc.ExecuteImport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteImport: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newImportResp(items))
}
