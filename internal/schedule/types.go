package schedule

import "schedule-board/internal/model"

// CreateInput carries the intake form fields for a new or edited appointment.
type CreateInput struct {
	Owner           string `json:"owner"`
	Time            string `json:"time"`
	ClientName      string `json:"client_name"`
	Description     string `json:"description"`
	LastAcctSummary string `json:"last_acct_summary"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Location        string `json:"location"`
	ZoomLink        string `json:"zoom_link"`
	Confirmation    string `json:"confirmation"`
	DPPsValue       string `json:"dpps_value"`
	IFsValue        string `json:"ifs_value"`
	Notes           string `json:"notes"`

	// SendZoomLink asks the meeting-link notifier to deliver the invitation
	// after the appointment is stored. UI-only "sent" marker, no delivery
	// guarantee.
	SendZoomLink bool `json:"send_zoom_link"`
}

// AppointmentView is an appointment enriched with its display time label.
type AppointmentView struct {
	model.Appointment
	TimeLabel string `json:"time_label"`
}

// OwnerSchedule is one owner's ordered slice of the day.
type OwnerSchedule struct {
	Owner        string            `json:"owner"`
	Appointments []AppointmentView `json:"appointments"`
	Count        int               `json:"count"`
}

// DayViewOutput is the full daily board grouped by owner.
type DayViewOutput struct {
	Owners []OwnerSchedule `json:"owners"`
	Total  int             `json:"total"`
}

// ExtractInput carries the uploaded schedule image.
type ExtractInput struct {
	// ImageBase64 is the raw base64 payload; a data-URL header, if present,
	// is stripped before sending.
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}
