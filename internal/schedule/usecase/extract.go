package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"schedule-board/internal/model"
	"schedule-board/internal/schedule"
	"schedule-board/pkg/gemini"
)

// ExtractFromImage sends a schedule image through the extraction service
// and admits the returned appointments into the collection. Service
// failures propagate to the caller; nothing is swallowed here.
func (uc *implUseCase) ExtractFromImage(ctx context.Context, input schedule.ExtractInput) ([]model.Appointment, error) {
	if uc.llm == nil {
		return nil, schedule.ErrExtractionDisabled
	}

	payload := stripDataURL(input.ImageBase64)
	if strings.TrimSpace(payload) == "" {
		return nil, schedule.ErrEmptyImage
	}

	req := gemini.NewScheduleExtractionRequest(payload, input.MimeType)

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("schedule extraction failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, nil
	}

	var parsed []gemini.ParsedAppointment
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}

	appts := make([]model.Appointment, 0, len(parsed))
	for _, p := range parsed {
		appts = append(appts, model.Appointment{
			ID:              uuid.NewString(),
			Owner:           p.Owner,
			Time:            p.Time,
			ClientName:      p.ClientName,
			Description:     p.Description,
			LastAcctSummary: p.LastAcctSummary,
			Phone:           p.Phone,
			Email:           p.Email,
			Location:        p.Location,
			Confirmation:    p.Confirmation,
			DPPsValue:       p.DPPsValue,
			IFsValue:        p.IFsValue,
			RMDCheck:        false,
		})
	}

	if len(appts) > 0 {
		if err := uc.repo.InsertBatch(ctx, appts); err != nil {
			return nil, fmt.Errorf("failed to store extracted appointments: %w", err)
		}
	}

	uc.l.Infof(ctx, "ExtractFromImage: admitted %d appointments", len(appts))
	return appts, nil
}

// stripDataURL removes a leading "data:image/png;base64," style header.
func stripDataURL(s string) string {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		return s[i+1:]
	}
	return s
}
