package notify

import (
	"context"

	"schedule-board/internal/model"
	pkgLog "schedule-board/pkg/log"
)

// MockNotifier simulates meeting-link delivery by logging the send. It
// stands in for a real email integration.
type MockNotifier struct {
	l pkgLog.Logger
}

// NewMockNotifier creates a logging MeetingLinkNotifier.
func NewMockNotifier(l pkgLog.Logger) *MockNotifier {
	return &MockNotifier{l: l}
}

func (n *MockNotifier) SendMeetingLink(ctx context.Context, appt model.Appointment) error {
	recipient := appt.Email
	if recipient == "" {
		recipient = appt.ClientName
	}
	n.l.Infof(ctx, "Zoom invitation link sent to %s (appointment %s)", recipient, appt.ID)
	return nil
}
