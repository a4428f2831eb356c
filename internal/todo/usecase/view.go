package usecase

import (
	"context"
	"sort"
	"time"

	"schedule-board/internal/model"
	"schedule-board/internal/todo"
	"schedule-board/pkg/clock"
)

func (uc implUseCase) View(ctx context.Context, filter todo.Filter) (todo.ViewOutput, error) {
	if filter.Scope == todo.ScopeCustom && filter.CustomDate == "" {
		return todo.ViewOutput{}, todo.ErrMissingCustomDate
	}

	today := uc.clock.Now()
	todayStr := today.Format(clock.DateFormat)

	var matched []model.ToDoItem
	for _, item := range uc.repo.List(ctx) {
		if filter.Assignee != "" && filter.Assignee != todo.AssigneeAll && item.Assignee != filter.Assignee {
			continue
		}
		ok, err := inScope(item.DueDate, filter, today)
		if err != nil {
			return todo.ViewOutput{}, err
		}
		if ok {
			matched = append(matched, item)
		}
	}

	out := todo.ViewOutput{
		Grouped: filter.Scope == todo.ScopeNext7Days || filter.Scope == todo.ScopeAll,
		Total:   len(matched),
	}
	for _, item := range matched {
		if item.Completed {
			out.Completed++
		} else {
			out.Active++
		}
	}

	if out.Grouped {
		out.Groups = groupByDueDate(matched, todayStr)
	} else if len(matched) > 0 {
		out.Groups = []todo.TaskGroup{{Tasks: toViews(matched, todayStr)}}
	}
	return out, nil
}

// inScope reports whether a due date falls inside the filter's window.
// Items without a due date appear only in the grouped scopes, where the
// no-date bucket gives them a home.
func inScope(dueDate string, filter todo.Filter, today time.Time) (bool, error) {
	todayStr := today.Format(clock.DateFormat)

	switch filter.Scope {
	case todo.ScopeAll:
		return true, nil
	case todo.ScopeToday:
		// Today is a working view: everything due up to and including
		// today, so the overdue backlog stays visible.
		return dueDate != "" && dueDate <= todayStr, nil
	case todo.ScopeTomorrow:
		tomorrow := today.AddDate(0, 0, 1).Format(clock.DateFormat)
		return dueDate == tomorrow, nil
	case todo.ScopeNext7Days:
		end := today.AddDate(0, 0, 7).Format(clock.DateFormat)
		return dueDate == "" || (dueDate >= todayStr && dueDate <= end), nil
	case todo.ScopeCustom:
		return dueDate == filter.CustomDate, nil
	default:
		return false, todo.ErrInvalidDateScope
	}
}

// groupByDueDate buckets tasks by due date ascending, with undated tasks
// in a terminal bucket.
func groupByDueDate(items []model.ToDoItem, today string) []todo.TaskGroup {
	buckets := make(map[string][]model.ToDoItem)
	var dates []string
	for _, item := range items {
		if _, ok := buckets[item.DueDate]; !ok && item.DueDate != "" {
			dates = append(dates, item.DueDate)
		}
		buckets[item.DueDate] = append(buckets[item.DueDate], item)
	}
	sort.Strings(dates)

	groups := make([]todo.TaskGroup, 0, len(dates)+1)
	for _, date := range dates {
		groups = append(groups, todo.TaskGroup{
			Date:  date,
			Label: dateLabel(date, today),
			Tasks: toViews(buckets[date], today),
		})
	}
	if undated, ok := buckets[""]; ok {
		groups = append(groups, todo.TaskGroup{
			Label: todo.NoDateLabel,
			Tasks: toViews(undated, today),
		})
	}
	return groups
}

// toViews orders active tasks before completed ones (stable within each
// band) and computes the overdue flag.
func toViews(items []model.ToDoItem, today string) []todo.TaskView {
	ordered := make([]model.ToDoItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Completed && ordered[j].Completed
	})

	views := make([]todo.TaskView, 0, len(ordered))
	for _, item := range ordered {
		views = append(views, todo.TaskView{
			ToDoItem: item,
			Overdue:  item.DueDate != "" && item.DueDate < today && item.Status != model.StatusCompleted,
		})
	}
	return views
}

// dateLabel renders a group header like the board does: relative names
// for today and tomorrow, otherwise a long weekday form.
func dateLabel(date, today string) string {
	if date == today {
		return "Today"
	}
	t, err := time.Parse(clock.DateFormat, date)
	if err != nil {
		return date
	}
	d, err := time.Parse(clock.DateFormat, today)
	if err == nil && t.Equal(d.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return t.Format("Monday, January 2")
}
