package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedule-board/internal/model"
	"schedule-board/internal/schedule"
	"schedule-board/pkg/gcalendar"
	"schedule-board/pkg/timetext"
)

// Create validates and stores a new appointment from the intake form.
func (uc *implUseCase) Create(ctx context.Context, input schedule.CreateInput) (model.Appointment, error) {
	appt, err := uc.buildAppointment(uuid.NewString(), input, model.Appointment{})
	if err != nil {
		return model.Appointment{}, err
	}

	if err := uc.repo.Insert(ctx, appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to store appointment: %w", err)
	}

	uc.l.Infof(ctx, "Create: appointment %s for %q at %q (owner %s)", appt.ID, appt.ClientName, appt.Time, appt.Owner)

	if input.SendZoomLink && appt.ZoomLink != "" {
		uc.sendLink(ctx, &appt)
		if appt.ZoomLinkSent {
			if err := uc.repo.Replace(ctx, appt); err != nil {
				uc.l.Warnf(ctx, "Create: failed to record sent flag for %s: %v", appt.ID, err)
			}
		}
	}

	uc.tryCreateCalendarEvent(ctx, appt)

	return appt, nil
}

// Update replaces an existing appointment on explicit edit resubmission.
func (uc *implUseCase) Update(ctx context.Context, id string, input schedule.CreateInput) (model.Appointment, error) {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Appointment{}, err
	}

	appt, err := uc.buildAppointment(id, input, existing)
	if err != nil {
		return model.Appointment{}, err
	}

	if input.SendZoomLink && appt.ZoomLink != "" {
		uc.sendLink(ctx, &appt)
	}

	if err := uc.repo.Replace(ctx, appt); err != nil {
		return model.Appointment{}, err
	}

	uc.l.Infof(ctx, "Update: appointment %s replaced", id)
	return appt, nil
}

// buildAppointment assembles a validated appointment record. A Zoom link is
// only persisted when the location is Zoom; the sent flag survives edits.
func (uc *implUseCase) buildAppointment(id string, input schedule.CreateInput, prev model.Appointment) (model.Appointment, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return model.Appointment{}, schedule.ErrEmptyClientName
	}
	if strings.TrimSpace(input.Owner) == "" {
		return model.Appointment{}, schedule.ErrEmptyOwner
	}
	if strings.TrimSpace(input.Time) == "" {
		return model.Appointment{}, schedule.ErrEmptyTime
	}

	location := input.Location
	if location == "" {
		location = string(model.LocationOffice)
	}

	zoomLink := ""
	if location == string(model.LocationZoom) {
		zoomLink = input.ZoomLink
		if zoomLink == "" {
			zoomLink = "https://zoom.us"
		}
	}

	confirmation := input.Confirmation
	if confirmation == "" {
		confirmation = string(model.ConfirmationNo)
	}

	return model.Appointment{
		ID:              id,
		Owner:           input.Owner,
		Time:            input.Time,
		ClientName:      input.ClientName,
		Description:     input.Description,
		LastAcctSummary: input.LastAcctSummary,
		Phone:           input.Phone,
		Email:           input.Email,
		Location:        location,
		ZoomLink:        zoomLink,
		ZoomLinkSent:    prev.ZoomLinkSent,
		Confirmation:    confirmation,
		DPPsValue:       input.DPPsValue,
		IFsValue:        input.IFsValue,
		Notes:           input.Notes,
		RMDCheck:        prev.RMDCheck,
	}, nil
}

// sendLink delivers the meeting link and flips the sent marker on success.
func (uc *implUseCase) sendLink(ctx context.Context, appt *model.Appointment) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendMeetingLink(ctx, *appt); err != nil {
		uc.l.Warnf(ctx, "sendLink: delivery failed for %s (non-fatal): %v", appt.ID, err)
		return
	}
	appt.ZoomLinkSent = true
}

// DayView returns the day's appointments grouped by owner, each group
// stable-sorted ascending by parsed time. Ties keep insertion order.
func (uc *implUseCase) DayView(ctx context.Context) (schedule.DayViewOutput, error) {
	appts, err := uc.repo.List(ctx)
	if err != nil {
		return schedule.DayViewOutput{}, fmt.Errorf("failed to list appointments: %w", err)
	}

	grouped := make(map[string][]model.Appointment)
	var ownerOrder []string
	for _, a := range appts {
		if _, seen := grouped[a.Owner]; !seen {
			ownerOrder = append(ownerOrder, a.Owner)
		}
		grouped[a.Owner] = append(grouped[a.Owner], a)
	}

	out := schedule.DayViewOutput{Total: len(appts)}
	for _, owner := range ownerOrder {
		views := SortByTime(grouped[owner])
		out.Owners = append(out.Owners, schedule.OwnerSchedule{
			Owner:        owner,
			Appointments: views,
			Count:        len(views),
		})
	}

	return out, nil
}

// SortByTime stable-sorts appointments ascending by minute of day and
// attaches the display label. Unparseable times sort last.
func SortByTime(appts []model.Appointment) []schedule.AppointmentView {
	views := make([]schedule.AppointmentView, 0, len(appts))
	for _, a := range appts {
		parsed := timetext.Parse(a.Time)
		views = append(views, schedule.AppointmentView{Appointment: a, TimeLabel: parsed.Label})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return timetext.Parse(views[i].Time).Minutes < timetext.Parse(views[j].Time).Minutes
	})

	return views
}

// ResendLink triggers a best-effort re-send of a Zoom invitation link.
func (uc *implUseCase) ResendLink(ctx context.Context, id string) error {
	appt, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if appt.Location != string(model.LocationZoom) {
		return schedule.ErrNotZoomMeeting
	}

	uc.sendLink(ctx, &appt)
	if appt.ZoomLinkSent {
		if err := uc.repo.Replace(ctx, appt); err != nil {
			return err
		}
	}
	return nil
}

// tryCreateCalendarEvent pushes the appointment to Google Calendar, when
// configured. Failure is logged and swallowed; the board is the source of
// truth, the calendar is a convenience mirror.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, appt model.Appointment) {
	if uc.calendar == nil {
		return
	}

	parsed := timetext.Parse(appt.Time)
	if parsed.Minutes >= timetext.SentinelMinutes {
		uc.l.Warnf(ctx, "calendar push skipped for %s: unparseable time %q", appt.ID, appt.Time)
		return
	}

	now := uc.clock.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(parsed.Minutes) * time.Minute)
	end := start.Add(time.Hour)

	summary := appt.ClientName
	if appt.Description != "" {
		summary = fmt.Sprintf("%s - %s", appt.ClientName, appt.Description)
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: appt.Notes,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %s (non-fatal): %v", appt.ID, err)
	}
}
