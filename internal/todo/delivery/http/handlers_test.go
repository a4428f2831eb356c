package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-board/config"
	"schedule-board/internal/middleware"
	"schedule-board/internal/model"
	scheduleMemory "schedule-board/internal/schedule/repository/memory"
	"schedule-board/internal/todo"
	todoHTTP "schedule-board/internal/todo/delivery/http"
	todoMemory "schedule-board/internal/todo/repository/memory"
	"schedule-board/internal/todo/usecase"
	"schedule-board/pkg/clock"
)

const today = "2025-12-05"

func newTestRouter(t *testing.T, appts ...model.Appointment) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &nopLogger{}
	apptRepo := scheduleMemory.New(l)
	apptRepo.Seed(appts)
	ck := clock.Fixed(time.Date(2025, 12, 5, 9, 0, 0, 0, time.UTC))
	uc := usecase.New(l, todoMemory.New(l), apptRepo, ck, todo.PlaceholderPDF{})

	r := gin.New()
	todoHTTP.RegisterRoutes(r.Group("/api/v1"), todoHTTP.New(l, uc), middleware.New(l, &config.Config{}))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type taskEnvelope struct {
	Data struct {
		Task model.ToDoItem `json:"task"`
	} `json:"data"`
}

func createTask(t *testing.T, r *gin.Engine, body string) model.ToDoItem {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/v1/todos", body)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp taskEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Data.Task
}

func TestAddTaskRoute(t *testing.T) {
	t.Run("Defaults Applied", func(t *testing.T) {
		r := newTestRouter(t)

		task := createTask(t, r, `{"text":"Call Cindy"}`)
		if task.Assignee != model.DefaultAssignee || task.DueDate != today {
			t.Errorf("defaults not applied: %+v", task)
		}
		if task.Status != model.StatusPending {
			t.Errorf("status = %q", task.Status)
		}
	})

	t.Run("Missing Text", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/todos", `{"description":"no text"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestListRoute(t *testing.T) {
	r := newTestRouter(t)
	createTask(t, r, `{"text":"due today"}`)
	createTask(t, r, `{"text":"due later","due_date":"2025-12-20"}`)

	w := doJSON(r, http.MethodGet, "/api/v1/todos?scope=today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data struct {
			Groups []struct {
				Tasks []model.ToDoItem `json:"tasks"`
			} `json:"groups"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Groups[0].Tasks[0].Text != "due today" {
		t.Fatalf("unexpected view: %s", w.Body.String())
	}

	// Custom scope without a date is rejected.
	w = doJSON(r, http.MethodGet, "/api/v1/todos?scope=custom", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("custom scope without date: status = %d, want 400", w.Code)
	}
}

func TestStatusRoute(t *testing.T) {
	r := newTestRouter(t)
	task := createTask(t, r, `{"text":"file paperwork"}`)

	w := doJSON(r, http.MethodPatch, "/api/v1/todos/"+task.ID+"/status", `{"status":"Completed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/todos/"+task.ID, "")
	var resp taskEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Task.Status != model.StatusCompleted || !resp.Data.Task.Completed {
		t.Errorf("completed flag must follow status: %+v", resp.Data.Task)
	}

	// Unknown status value fails validation.
	w = doJSON(r, http.MethodPatch, "/api/v1/todos/"+task.ID+"/status", `{"status":"Paused"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: code = %d, want 400", w.Code)
	}
}

func TestDetailRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/todos/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestImportRoute(t *testing.T) {
	r := newTestRouter(t, model.Appointment{
		ID: "appt-1", Owner: "Cindy", Time: "1:00", ClientName: "Jane Doe", Description: "Annual review",
	})

	w := doJSON(r, http.MethodPost, "/api/v1/todos/import",
		`{"selected_ids":["appt-1"],"config":{"appt-1":{"assignee":"Jane Doe","due_date":"2025-12-08"}}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Tasks []model.ToDoItem `json:"tasks"`
			Count int              `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Count != 1 {
		t.Fatalf("count = %d, body = %s", resp.Data.Count, w.Body.String())
	}
	got := resp.Data.Tasks[0]
	if got.Text != "Jane Doe" || got.CompletionTime != "1:00 PM" || got.DueDate != "2025-12-08" {
		t.Errorf("imported task = %+v", got)
	}

	// Second run is a no-op thanks to the duplicate guard.
	w = doJSON(r, http.MethodPost, "/api/v1/todos/import", `{"selected_ids":["appt-1"]}`)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Count != 0 {
		t.Errorf("re-import count = %d, want 0", resp.Data.Count)
	}
}

func TestImportRouteBulkOverrides(t *testing.T) {
	r := newTestRouter(t,
		model.Appointment{ID: "appt-1", Owner: "Cindy", Time: "9:00", ClientName: "Bob Jones"},
		model.Appointment{ID: "appt-2", Owner: "Taylor", Time: "2:00", ClientName: "Alice Smith"},
	)

	w := doJSON(r, http.MethodPost, "/api/v1/todos/import",
		`{"selected_ids":["appt-1","appt-2"],"all_assignee":"Jane Doe","all_due_date":"2025-12-09"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Tasks []model.ToDoItem `json:"tasks"`
			Count int              `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Count != 2 {
		t.Fatalf("count = %d, body = %s", resp.Data.Count, w.Body.String())
	}
	for _, task := range resp.Data.Tasks {
		if task.Assignee != "Jane Doe" || task.DueDate != "2025-12-09" {
			t.Errorf("bulk overrides not applied: %+v", task)
		}
	}
}
