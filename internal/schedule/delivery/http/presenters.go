package http

import (
	"schedule-board/internal/model"
	"schedule-board/internal/schedule"
)

// --- Request DTOs ---

type appointmentReq struct {
	Owner           string `json:"owner"           binding:"required,min=1,max=255"`
	Time            string `json:"time"            binding:"required,min=1,max=32"`
	ClientName      string `json:"client_name"     binding:"required,min=1,max=255"`
	Description     string `json:"description"     binding:"max=1000"`
	LastAcctSummary string `json:"last_acct_summary" binding:"max=1000"`
	Phone           string `json:"phone"           binding:"max=64"`
	Email           string `json:"email"           binding:"omitempty,email"`
	Location        string `json:"location"        binding:"max=64"`
	ZoomLink        string `json:"zoom_link"       binding:"max=512"`
	Confirmation    string `json:"confirmation"    binding:"max=64"`
	DPPsValue       string `json:"dpps_value"      binding:"max=64"`
	IFsValue        string `json:"ifs_value"       binding:"max=64"`
	Notes           string `json:"notes"           binding:"max=2000"`
	SendZoomLink    bool   `json:"send_zoom_link"`
}

func (r appointmentReq) toInput() schedule.CreateInput {
	return schedule.CreateInput{
		Owner:           r.Owner,
		Time:            r.Time,
		ClientName:      r.ClientName,
		Description:     r.Description,
		LastAcctSummary: r.LastAcctSummary,
		Phone:           r.Phone,
		Email:           r.Email,
		Location:        r.Location,
		ZoomLink:        r.ZoomLink,
		Confirmation:    r.Confirmation,
		DPPsValue:       r.DPPsValue,
		IFsValue:        r.IFsValue,
		Notes:           r.Notes,
		SendZoomLink:    r.SendZoomLink,
	}
}

type extractReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type"`
}

func (r extractReq) toInput() schedule.ExtractInput {
	return schedule.ExtractInput{
		ImageBase64: r.ImageBase64,
		MimeType:    r.MimeType,
	}
}

// --- Response DTOs ---

type appointmentResp struct {
	Appointment model.Appointment `json:"appointment"`
}

func (h *handler) newAppointmentResp(appt model.Appointment) appointmentResp {
	return appointmentResp{Appointment: appt}
}

type dayViewResp struct {
	Owners []schedule.OwnerSchedule `json:"owners"`
	Total  int                      `json:"total"`
}

func (h *handler) newDayViewResp(out schedule.DayViewOutput) dayViewResp {
	return dayViewResp{
		Owners: out.Owners,
		Total:  out.Total,
	}
}

type extractResp struct {
	Appointments []model.Appointment `json:"appointments"`
	Count        int                 `json:"count"`
}

func (h *handler) newExtractResp(appts []model.Appointment) extractResp {
	return extractResp{
		Appointments: appts,
		Count:        len(appts),
	}
}
