package notify

import (
	"context"

	"schedule-board/internal/model"
)

// MeetingLinkNotifier delivers a meeting invitation link for an appointment.
// Implementations are fire-and-forget; the caller only records a "sent"
// flag, there is no delivery guarantee.
type MeetingLinkNotifier interface {
	SendMeetingLink(ctx context.Context, appt model.Appointment) error
}
