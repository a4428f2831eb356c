package usecase_test

import (
	"context"
	"errors"
	"testing"

	"schedule-board/internal/model"
	"schedule-board/internal/todo"
)

func taskIDs(groups []todo.TaskGroup) []string {
	var ids []string
	for _, g := range groups {
		for _, v := range g.Tasks {
			ids = append(ids, v.Text)
		}
	}
	return ids
}

func TestView(t *testing.T) {
	ctx := context.Background()

	seed := func() todo.UseCase {
		uc := newTestUseCase()
		uc.Add(ctx, todo.AddInput{Text: "overdue", DueDate: date(-3)})
		uc.Add(ctx, todo.AddInput{Text: "due-today", DueDate: date(0)})
		uc.Add(ctx, todo.AddInput{Text: "due-tomorrow", DueDate: date(1)})
		uc.Add(ctx, todo.AddInput{Text: "due-in-6", DueDate: date(6)})
		uc.Add(ctx, todo.AddInput{Text: "due-in-7", DueDate: date(7)})
		uc.Add(ctx, todo.AddInput{Text: "due-in-9", DueDate: date(9)})
		uc.Add(ctx, todo.AddInput{Text: "jane-today", DueDate: date(0), Assignee: "Jane Doe"})
		return uc
	}

	t.Run("Today Includes Overdue Backlog", func(t *testing.T) {
		uc := seed()

		out, err := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeToday})
		if err != nil {
			t.Fatalf("View: %v", err)
		}
		if out.Grouped {
			t.Errorf("single-day scope must not group")
		}
		got := taskIDs(out.Groups)
		want := map[string]bool{"overdue": true, "due-today": true, "jane-today": true}
		if len(got) != len(want) {
			t.Fatalf("got %v, want exactly %v", got, want)
		}
		for _, text := range got {
			if !want[text] {
				t.Errorf("unexpected task %q in today view", text)
			}
		}
	})

	t.Run("Tomorrow Is Exact Match", func(t *testing.T) {
		uc := seed()

		out, _ := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeTomorrow})
		got := taskIDs(out.Groups)
		if len(got) != 1 || got[0] != "due-tomorrow" {
			t.Fatalf("got %v, want [due-tomorrow]", got)
		}
	})

	t.Run("Next 7 Days Is Inclusive Window", func(t *testing.T) {
		uc := seed()

		out, _ := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeNext7Days})
		if !out.Grouped {
			t.Errorf("week scope must group by date")
		}
		seen := make(map[string]bool)
		for _, text := range taskIDs(out.Groups) {
			seen[text] = true
			if text == "overdue" || text == "due-in-9" {
				t.Errorf("task %q outside the window", text)
			}
		}
		// The window runs from today through today+7, both ends included.
		if !seen["due-in-7"] {
			t.Errorf("task due exactly seven days out must be in the window")
		}
		if out.Total != 5 {
			t.Errorf("total = %d, want 5", out.Total)
		}
	})

	t.Run("Assignee Filter Is Exact", func(t *testing.T) {
		uc := seed()

		out, _ := uc.View(ctx, todo.Filter{Assignee: "Jane Doe", Scope: todo.ScopeAll})
		got := taskIDs(out.Groups)
		if len(got) != 1 || got[0] != "jane-today" {
			t.Fatalf("got %v, want [jane-today]", got)
		}
	})

	t.Run("Custom Scope Requires Date", func(t *testing.T) {
		uc := seed()

		if _, err := uc.View(ctx, todo.Filter{Scope: todo.ScopeCustom}); !errors.Is(err, todo.ErrMissingCustomDate) {
			t.Fatalf("err = %v, want ErrMissingCustomDate", err)
		}

		out, err := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeCustom, CustomDate: date(6)})
		if err != nil {
			t.Fatalf("View: %v", err)
		}
		got := taskIDs(out.Groups)
		if len(got) != 1 || got[0] != "due-in-6" {
			t.Fatalf("got %v, want [due-in-6]", got)
		}
	})

	t.Run("Unknown Scope Rejected", func(t *testing.T) {
		uc := seed()

		if _, err := uc.View(ctx, todo.Filter{Scope: todo.DateScope("fortnight")}); !errors.Is(err, todo.ErrInvalidDateScope) {
			t.Fatalf("err = %v, want ErrInvalidDateScope", err)
		}
	})
}

func TestViewGroupingAndLabels(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	uc.Add(ctx, todo.AddInput{Text: "t-today", DueDate: date(0)})
	uc.Add(ctx, todo.AddInput{Text: "t-tomorrow", DueDate: date(1)})
	uc.Add(ctx, todo.AddInput{Text: "t-monday", DueDate: "2025-12-08"})

	out, err := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeNext7Days})
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if len(out.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(out.Groups))
	}
	wantLabels := []string{"Today", "Tomorrow", "Monday, December 8"}
	for i, want := range wantLabels {
		if out.Groups[i].Label != want {
			t.Errorf("group %d label = %q, want %q", i, out.Groups[i].Label, want)
		}
	}
}

func TestViewNoDateBucketIsTerminal(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	// Bypass Add's defaulting to create an undated task.
	item, _ := uc.Add(ctx, todo.AddInput{Text: "someday"})
	uc.SetDueDate(ctx, item.ID, "")
	uc.Add(ctx, todo.AddInput{Text: "dated", DueDate: date(2)})

	out, _ := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeAll})
	last := out.Groups[len(out.Groups)-1]
	if last.Label != todo.NoDateLabel || last.Date != "" {
		t.Fatalf("last group = %+v, want the no-date bucket", last)
	}
	if len(last.Tasks) != 1 || last.Tasks[0].Text != "someday" {
		t.Fatalf("no-date bucket tasks = %+v", last.Tasks)
	}

	// Undated tasks stay out of the single-day scopes.
	today, _ := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeToday})
	for _, text := range taskIDs(today.Groups) {
		if text == "someday" {
			t.Errorf("undated task leaked into today scope")
		}
	}
}

func TestViewCompletedSinkAndOverdue(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	a, _ := uc.Add(ctx, todo.AddInput{Text: "a", DueDate: date(-1)})
	uc.Add(ctx, todo.AddInput{Text: "b", DueDate: date(-1)})
	uc.Add(ctx, todo.AddInput{Text: "c", DueDate: date(-1)})
	uc.UpdateStatus(ctx, a.ID, model.StatusCompleted)

	out, _ := uc.View(ctx, todo.Filter{Assignee: todo.AssigneeAll, Scope: todo.ScopeToday})
	tasks := out.Groups[0].Tasks

	// Repository order is most-recent-first; completed tasks sink while
	// the active band keeps that order.
	if tasks[0].Text != "c" || tasks[1].Text != "b" || tasks[2].Text != "a" {
		t.Fatalf("order = %v", taskIDs(out.Groups))
	}
	if !tasks[0].Overdue || !tasks[1].Overdue {
		t.Errorf("past-due active tasks must be flagged overdue")
	}
	if tasks[2].Overdue {
		t.Errorf("completed task must not be flagged overdue")
	}

	if out.Total != 3 || out.Active != 2 || out.Completed != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", out.Total, out.Active, out.Completed)
	}
}
