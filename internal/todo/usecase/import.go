package usecase

import (
	"context"
	"fmt"

	"schedule-board/internal/model"
	"schedule-board/internal/todo"
	"schedule-board/pkg/clock"
	"schedule-board/pkg/timetext"
)

func (uc implUseCase) PlanImport(ctx context.Context, input todo.ImportInput) ([]todo.AddInput, error) {
	appts, err := uc.apptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("todo.usecase.PlanImport: %w", err)
	}

	selected := make(map[string]bool, len(input.SelectedIDs))
	for _, id := range input.SelectedIDs {
		selected[id] = true
	}

	// An appointment that already has a task pointing at it is skipped,
	// no matter which assignee owns that task.
	imported := make(map[string]bool)
	for _, item := range uc.repo.List(ctx) {
		if item.SourceAppointmentID != "" {
			imported[item.SourceAppointmentID] = true
		}
	}

	// Configuration resolves in three layers, mirroring the import dialog:
	// seeded batch defaults, then bulk overrides, then per-item choices.
	config := todo.NewImportConfig(input.SelectedIDs, clock.Today(uc.clock))
	if input.AllAssignee != "" {
		todo.SetAllAssignees(config, input.AllAssignee)
	}
	if input.AllDueDate != "" {
		todo.SetAllDueDates(config, input.AllDueDate)
	}
	for id, c := range input.Config {
		config[id] = c
	}

	var plan []todo.AddInput
	for _, appt := range appts {
		if !selected[appt.ID] || imported[appt.ID] {
			continue
		}

		cfg := config[appt.ID]

		plan = append(plan, todo.AddInput{
			Text:                appt.ClientName,
			Description:         appt.Description,
			CompletionTime:      timetext.FormatDisplay(appt.Time),
			DueDate:             cfg.DueDate,
			Assignee:            cfg.Assignee,
			SourceAppointmentID: appt.ID,
		})
	}
	return plan, nil
}

func (uc implUseCase) ExecuteImport(ctx context.Context, input todo.ImportInput) ([]model.ToDoItem, error) {
	plan, err := uc.PlanImport(ctx, input)
	if err != nil {
		return nil, err
	}

	created := make([]model.ToDoItem, 0, len(plan))
	for _, add := range plan {
		item, err := uc.Add(ctx, add)
		if err != nil {
			return created, fmt.Errorf("todo.usecase.ExecuteImport: %w", err)
		}
		created = append(created, item)
	}

	uc.l.Infof(ctx, "todo.usecase.ExecuteImport: imported %d of %d selected appointments", len(created), len(input.SelectedIDs))
	return created, nil
}
