package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrEmptyClientName     = errors.New("client name is required")
	ErrEmptyOwner          = errors.New("owner is required")
	ErrEmptyTime           = errors.New("time is required")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotZoomMeeting      = errors.New("appointment is not a Zoom meeting")
	ErrEmptyImage          = errors.New("image payload is empty")
	ErrExtractionDisabled  = errors.New("image extraction is not configured")
)
