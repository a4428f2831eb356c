package usecase_test

import (
	"context"

	"schedule-board/internal/model"
	"schedule-board/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// Mock notifier recording every send.
type mockNotifier struct {
	sent []model.Appointment
	err  error
}

func (m *mockNotifier) SendMeetingLink(ctx context.Context, appt model.Appointment) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, appt)
	return nil
}

// Mock extraction client returning a canned response.
type mockExtractor struct {
	response *gemini.GenerateResponse
	err      error
}

func (m *mockExtractor) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.response, m.err
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}
